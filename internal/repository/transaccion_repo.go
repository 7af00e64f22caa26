package repository

import (
	"github.com/granaceros-POS/POS-Banckend/internal/model"

	"gorm.io/gorm"
)

// TransaccionRepository escribe el libro de transacciones.
type TransaccionRepository interface {
	// CrearLineaTx inserta la línea con payload idéntico en la tabla vigente y en
	// la histórica, dentro de la transacción del llamador. Las líneas nunca se
	// actualizan ni se borran.
	CrearLineaTx(tx *gorm.DB, linea *model.LineaTransaccion) error

	DB() *gorm.DB
}

type transaccionRepo struct{ db *gorm.DB }

func NewTransaccionRepository(db *gorm.DB) TransaccionRepository { return &transaccionRepo{db: db} }

func (r *transaccionRepo) DB() *gorm.DB { return r.db }

func (r *transaccionRepo) CrearLineaTx(tx *gorm.DB, linea *model.LineaTransaccion) error {
	if err := tx.Create(linea).Error; err != nil {
		return err
	}
	historica := model.LineaTransaccionHistorica(*linea)
	return tx.Create(&historica).Error
}
