package service

import (
	"context"
	"fmt"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/model"
	"github.com/granaceros-POS/POS-Banckend/internal/repository"
	"github.com/granaceros-POS/POS-Banckend/internal/worker"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DesgloseService explota la receta de un producto vendido: recorre el árbol
// de componentes, descuenta inventario en cada hoja y acumula los tres costos.
type DesgloseService interface {
	DesglosarVenta(ctx context.Context, req dto.DesgloseRequest) (*dto.DesgloseResponse, error)
}

type desgloseService struct {
	recetas    repository.RecetaRepository
	inventario InventarioService
	invRepo    repository.InventarioRepository
	dispatcher *worker.Dispatcher
}

func NewDesgloseService(
	recetas repository.RecetaRepository,
	inventario InventarioService,
	invRepo repository.InventarioRepository,
	dispatcher *worker.Dispatcher,
) DesgloseService {
	return &desgloseService{
		recetas:    recetas,
		inventario: inventario,
		invRepo:    invRepo,
		dispatcher: dispatcher,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// DesglosarVenta es el único límite transaccional del desglose: valida el tipo
// de venta, abre UNA transacción, recursa, y hace commit o rollback completo.
// Ninguna mutación parcial es observable si algo falla a cualquier profundidad.
func (s *desgloseService) DesglosarVenta(ctx context.Context, req dto.DesgloseRequest) (*dto.DesgloseResponse, error) {
	if !TipoVentaValido(req.TipoVentaID) {
		return nil, fmt.Errorf("tipo de venta %d: %w", req.TipoVentaID, ErrTipoVentaInvalido)
	}
	incluirSuministros := req.IncluirSuministros == nil || *req.IncluirSuministros

	var totales AcumuladorCostos
	var tocados []int
	txErr := runTx(ctx, s.invRepo.DB(), func(tx *gorm.DB) error {
		ruta := map[int]bool{req.ProductoID: true}
		var err error
		totales, tocados, err = s.desglosar(tx, req.ProductoID, req.Cantidad, req.TipoVentaID, req.AlmacenID, incluirSuministros, ruta)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}

	// Alerta de stock asíncrona — best-effort, fuera de la transacción.
	if s.dispatcher != nil && len(tocados) > 0 {
		_ = s.dispatcher.EnqueueAlertaStock(ctx, worker.AlertaStockPayload{
			AlmacenID: req.AlmacenID,
			Productos: tocados,
		})
	}

	totales = totales.Round()
	return &dto.DesgloseResponse{
		ProductoID:        req.ProductoID,
		Cantidad:          req.Cantidad,
		CostoMateriaPrima: totales.MateriaPrima,
		CostoSuministros:  totales.Suministros,
		CostoManoObra:     totales.ManoObra,
	}, nil
}

// desglosar procesa un nivel de la receta y devuelve los costos de esa rama
// junto con las hojas cuyas posiciones se tocaron. El acumulador es un valor
// devuelto que el padre combina; nunca una referencia mutable compartida.
// ruta es el conjunto de productos en la cadena de ancestros actual: si un
// componente compuesto reaparece en ella, el grafo tiene un ciclo y se corta
// de inmediato en lugar de recursar sin límite.
func (s *desgloseService) desglosar(
	tx *gorm.DB,
	productoID int,
	cantidad decimal.Decimal,
	tipoVentaID, almacenID int,
	incluirSuministros bool,
	ruta map[int]bool,
) (AcumuladorCostos, []int, error) {
	var acum AcumuladorCostos
	var tocados []int

	componentes, err := s.recetas.ComponentesTx(tx, productoID, tipoVentaID)
	if err != nil {
		return acum, nil, err
	}
	// sin receta: hoja pura, rama sin costo
	for _, comp := range componentes {
		cantidadRequerida := cantidad.Mul(comp.Ratio)

		if comp.EsSuministro && !incluirSuministros {
			continue
		}

		if comp.TipoComponente == model.TipoReceta {
			if ruta[comp.ComponenteID] {
				return acum, nil, fmt.Errorf("producto %d: %w", comp.ComponenteID, ErrRecetaCiclica)
			}
			ruta[comp.ComponenteID] = true
			rama, ramaTocados, err := s.desglosar(tx, comp.ComponenteID, cantidadRequerida, tipoVentaID, almacenID, incluirSuministros, ruta)
			delete(ruta, comp.ComponenteID)
			if err != nil {
				return acum, nil, err
			}
			acum = acum.Add(rama)
			tocados = append(tocados, ramaTocados...)
			continue
		}

		// hoja: descontar inventario sin recalcular el promedio
		costoUnitario, tipo, err := s.inventario.AplicarMovimientoTx(tx, Movimiento{
			AlmacenID:       almacenID,
			ProductoID:      comp.ComponenteID,
			Cantidad:        cantidadRequerida,
			Direccion:       -1,
			RecalcularCosto: false,
		})
		if err != nil {
			return acum, nil, err
		}
		tocados = append(tocados, comp.ComponenteID)

		costoLinea := costoUnitario.Mul(cantidadRequerida)
		switch tipo {
		case model.TipoMateriaPrima:
			acum.MateriaPrima = acum.MateriaPrima.Add(costoLinea)
		case model.TipoSuministro:
			acum.Suministros = acum.Suministros.Add(costoLinea)
		case model.TipoManoObra:
			acum.ManoObra = acum.ManoObra.Add(costoLinea)
		}
		// otras clasificaciones no aportan costo
	}
	return acum, tocados, nil
}
