package repository

import (
	"context"
	"errors"

	"github.com/granaceros-POS/POS-Banckend/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventarioRepository define el acceso a las posiciones de inventario y los
// costos estimados. Los servicios dependen de esta interfaz, no de GORM, para
// poder probarse con stubs en memoria.
//
// Los métodos *Tx reciben la transacción abierta por el coordinador y nunca
// abren ni cierran una propia.
type InventarioRepository interface {
	// FindForUpdateTx lee la posición con bloqueo de fila (SELECT … FOR UPDATE),
	// retenido hasta el fin de la transacción. gorm.ErrRecordNotFound cuando la
	// posición no existe todavía.
	FindForUpdateTx(tx *gorm.DB, almacenID, productoID int) (*model.InventarioProducto, error)

	// CostoEstimadoTx devuelve el costo estimado del producto, o 0.00 si no hay fila.
	CostoEstimadoTx(tx *gorm.DB, almacenID, productoID int) (decimal.Decimal, error)

	// AplicarMovimientoTx suma delta a la cantidad y fija el costo promedio de la
	// posición. Upsert: inserta la fila con los valores calculados si no existía.
	AplicarMovimientoTx(tx *gorm.DB, almacenID, productoID int, delta, costo decimal.Decimal, tipo int) error

	// ListarPosiciones lee posiciones puntuales fuera de transacción (alertas).
	ListarPosiciones(ctx context.Context, almacenID int, productos []int) ([]model.InventarioProducto, error)

	// DB expone el *gorm.DB para que el coordinador abra la transacción única.
	DB() *gorm.DB
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) DB() *gorm.DB { return r.db }

func (r *inventarioRepo) FindForUpdateTx(tx *gorm.DB, almacenID, productoID int) (*model.InventarioProducto, error) {
	var pos model.InventarioProducto
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("almacen_id = ? AND producto_id = ?", almacenID, productoID).
		First(&pos).Error
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (r *inventarioRepo) CostoEstimadoTx(tx *gorm.DB, almacenID, productoID int) (decimal.Decimal, error) {
	var est model.CostoEstimado
	err := tx.Where("almacen_id = ? AND producto_id = ?", almacenID, productoID).
		First(&est).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	return est.Valor, nil
}

func (r *inventarioRepo) AplicarMovimientoTx(tx *gorm.DB, almacenID, productoID int, delta, costo decimal.Decimal, tipo int) error {
	pos := model.InventarioProducto{
		AlmacenID:     almacenID,
		ProductoID:    productoID,
		Cantidad:      delta,
		CostoPromedio: costo,
		TipoProducto:  tipo,
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "almacen_id"}, {Name: "producto_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"cantidad":       gorm.Expr("inventario_productos.cantidad + ?", delta),
			"costo_promedio": costo,
		}),
	}).Create(&pos).Error
}

func (r *inventarioRepo) ListarPosiciones(ctx context.Context, almacenID int, productos []int) ([]model.InventarioProducto, error) {
	var posiciones []model.InventarioProducto
	err := r.db.WithContext(ctx).
		Where("almacen_id = ? AND producto_id IN ?", almacenID, productos).
		Find(&posiciones).Error
	return posiciones, err
}
