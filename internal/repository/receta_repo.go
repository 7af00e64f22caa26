package repository

import (
	"github.com/granaceros-POS/POS-Banckend/internal/model"

	"gorm.io/gorm"
)

// RecetaRepository resuelve los componentes directos de una receta.
type RecetaRepository interface {
	// ComponentesTx devuelve los componentes de (producto, tipo de venta) con la
	// clasificación de cada componente tomada del catálogo. Slice vacío cuando el
	// producto no tiene receta para ese tipo de venta: es el caso base de la
	// recursión, no un error.
	ComponentesTx(tx *gorm.DB, productoID, tipoVentaID int) ([]model.ComponenteReceta, error)
}

type recetaRepo struct{ db *gorm.DB }

func NewRecetaRepository(db *gorm.DB) RecetaRepository { return &recetaRepo{db: db} }

func (r *recetaRepo) ComponentesTx(tx *gorm.DB, productoID, tipoVentaID int) ([]model.ComponenteReceta, error) {
	var componentes []model.ComponenteReceta
	err := tx.Table("componentes_receta").
		Select("componentes_receta.*, productos.tipo AS tipo_componente").
		Joins("JOIN productos ON productos.codigo = componentes_receta.componente_id").
		Where("componentes_receta.producto_id = ? AND componentes_receta.tipo_venta_id = ?", productoID, tipoVentaID).
		Order("componentes_receta.componente_id ASC").
		Find(&componentes).Error
	return componentes, err
}
