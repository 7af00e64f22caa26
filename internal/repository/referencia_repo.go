package repository

import (
	"context"
	"errors"

	"github.com/granaceros-POS/POS-Banckend/internal/model"

	"gorm.io/gorm"
)

// ReferenciaRepository lee los catálogos de referencia: tipos de venta,
// códigos de operación, sesiones de caja y personal. Todo solo lectura.
type ReferenciaRepository interface {
	// ListaPrecios devuelve la lista de precios del tipo de venta, o 0 si el
	// código no tiene fila en tipos_venta.
	ListaPrecios(ctx context.Context, tipoVentaID int) (int, error)

	// CodigoOperacion busca un código en el catálogo por (tipo, código).
	// gorm.ErrRecordNotFound cuando no está definido.
	CodigoOperacion(ctx context.Context, tipo string, codigo int) (*model.CodigoOperacion, error)

	// SesionAbierta busca la sesión activa de una caja para el código de
	// operación de apertura dado.
	SesionAbierta(ctx context.Context, almacenID, cajaID, operacionID int) (*model.SesionCaja, error)

	// Cajero busca personal por código exigiendo el cargo de cajero.
	Cajero(ctx context.Context, almacenID, codigo, cargo int) (*model.Cajero, error)
}

type referenciaRepo struct{ db *gorm.DB }

func NewReferenciaRepository(db *gorm.DB) ReferenciaRepository { return &referenciaRepo{db: db} }

func (r *referenciaRepo) ListaPrecios(ctx context.Context, tipoVentaID int) (int, error) {
	var tv model.TipoVenta
	err := r.db.WithContext(ctx).First(&tv, "codigo = ?", tipoVentaID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return tv.ListaPrecios, nil
}

func (r *referenciaRepo) CodigoOperacion(ctx context.Context, tipo string, codigo int) (*model.CodigoOperacion, error) {
	var op model.CodigoOperacion
	err := r.db.WithContext(ctx).
		Where("tipo = ? AND codigo = ?", tipo, codigo).
		First(&op).Error
	if err != nil {
		return nil, err
	}
	return &op, nil
}

func (r *referenciaRepo) SesionAbierta(ctx context.Context, almacenID, cajaID, operacionID int) (*model.SesionCaja, error) {
	var sesion model.SesionCaja
	err := r.db.WithContext(ctx).
		Where("almacen_id = ? AND caja_id = ? AND operacion_id = ? AND estado = 'A'", almacenID, cajaID, operacionID).
		First(&sesion).Error
	if err != nil {
		return nil, err
	}
	return &sesion, nil
}

func (r *referenciaRepo) Cajero(ctx context.Context, almacenID, codigo, cargo int) (*model.Cajero, error) {
	var cajero model.Cajero
	err := r.db.WithContext(ctx).
		Where("almacen_id = ? AND codigo = ? AND cargo = ?", almacenID, codigo, cargo).
		First(&cajero).Error
	if err != nil {
		return nil, err
	}
	return &cajero, nil
}
