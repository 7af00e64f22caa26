package service

import (
	"context"
	"errors"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/model"
	"github.com/granaceros-POS/POS-Banckend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Movimiento es un cambio de cantidad sobre una posición de inventario.
// Cantidad es la magnitud (≥ 0); Direccion (+1 entrada, -1 salida) la firma.
type Movimiento struct {
	AlmacenID  int
	ProductoID int
	Cantidad   decimal.Decimal
	Direccion  int
	// RecalcularCosto: correr el promedio ponderado. El desglose de ventas lo
	// apaga: una venta no perturba el promedio, solo mueve cantidad.
	RecalcularCosto bool
	// CostoEntrante es el precio unitario de entrada del promedio; las salidas
	// por venta usan 0.00.
	CostoEntrante decimal.Decimal
}

type InventarioService interface {
	// AplicarMovimiento ejecuta un ajuste manual bajo su propia transacción,
	// independiente de cualquier desglose.
	AplicarMovimiento(ctx context.Context, req dto.MovimientoRequest) (*dto.MovimientoResponse, error)

	// AplicarMovimientoTx aplica un movimiento dentro de la transacción abierta
	// del llamador y devuelve el costo unitario resultante y la clasificación
	// del producto. Cualquier falla de acceso a datos se propaga sin tocar, para
	// que el coordinador haga rollback completo.
	AplicarMovimientoTx(tx *gorm.DB, mov Movimiento) (decimal.Decimal, int, error)
}

type inventarioService struct {
	repo     repository.InventarioRepository
	politica PoliticaCostos
}

func NewInventarioService(repo repository.InventarioRepository, politica PoliticaCostos) InventarioService {
	return &inventarioService{repo: repo, politica: politica}
}

func (s *inventarioService) AplicarMovimiento(ctx context.Context, req dto.MovimientoRequest) (*dto.MovimientoResponse, error) {
	if req.Direccion != 1 && req.Direccion != -1 {
		return nil, ErrDireccionInvalida
	}
	mov := Movimiento{
		AlmacenID:       req.AlmacenID,
		ProductoID:      req.ProductoID,
		Cantidad:        req.Cantidad,
		Direccion:       req.Direccion,
		RecalcularCosto: req.RecalcularCosto == nil || *req.RecalcularCosto,
		CostoEntrante:   req.CostoEntrante,
	}

	var costo decimal.Decimal
	var tipo int
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var txErr error
		costo, tipo, txErr = s.AplicarMovimientoTx(tx, mov)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoResponse{CostoUnitario: costo, TipoProducto: tipo}, nil
}

// AplicarMovimientoTx es el núcleo del libro de inventario:
//  1. lectura con bloqueo de fila de la posición (serializa movimientos
//     concurrentes sobre el mismo producto hasta el fin de la transacción),
//  2. fila ausente = cantidad 0, costo 0, materia prima,
//  3. base de costo según la política,
//  4. promedio ponderado solo si RecalcularCosto y el total firmado queda
//     positivo; si no, la base queda como está,
//  5. clamp a ≥ 0 y redondeo a 2 decimales,
//  6. upsert de cantidad y costo.
func (s *inventarioService) AplicarMovimientoTx(tx *gorm.DB, mov Movimiento) (decimal.Decimal, int, error) {
	cantidadActual := decimal.Zero
	costoActual := decimal.Zero
	tipo := model.TipoMateriaPrima

	pos, err := s.repo.FindForUpdateTx(tx, mov.AlmacenID, mov.ProductoID)
	switch {
	case err == nil:
		cantidadActual = pos.Cantidad
		costoActual = pos.CostoPromedio
		tipo = pos.TipoProducto
	case errors.Is(err, gorm.ErrRecordNotFound):
		// primera vez que se mueve este producto en este almacén
	default:
		return decimal.Zero, 0, err
	}

	costoEstimado, err := s.repo.CostoEstimadoTx(tx, mov.AlmacenID, mov.ProductoID)
	if err != nil {
		return decimal.Zero, 0, err
	}

	costoNuevo := s.politica.CostoBase(costoActual, costoEstimado, cantidadActual)

	delta := mov.Cantidad.Mul(decimal.NewFromInt(int64(mov.Direccion)))
	if mov.RecalcularCosto {
		total := cantidadActual.Add(delta)
		if total.IsPositive() {
			costoNuevo = costoNuevo.Mul(cantidadActual).
				Add(mov.CostoEntrante.Mul(mov.Cantidad)).
				Div(cantidadActual.Add(mov.Cantidad))
		}
	}

	if costoNuevo.IsNegative() {
		costoNuevo = decimal.Zero
	}
	costoNuevo = costoNuevo.Round(2)

	if err := s.repo.AplicarMovimientoTx(tx, mov.AlmacenID, mov.ProductoID, delta, costoNuevo, tipo); err != nil {
		return decimal.Zero, 0, err
	}
	return costoNuevo, tipo, nil
}
