package dto

import "github.com/shopspring/decimal"

// DesgloseRequest es la entrada del desglose de una venta: explota la receta
// del producto, descuenta inventario de cada ingrediente hoja y devuelve los
// tres costos acumulados.
type DesgloseRequest struct {
	ProductoID  int             `json:"producto_id" validate:"required"`
	Cantidad    decimal.Decimal `json:"cantidad" validate:"required,gt=0"`
	TipoVentaID int             `json:"tipo_venta_id" validate:"required"`
	AlmacenID   int             `json:"almacen_id"`
	// IncluirSuministros omitido = true.
	IncluirSuministros *bool `json:"incluir_suministros"`
}

type DesgloseResponse struct {
	ProductoID        int             `json:"producto_id"`
	Cantidad          decimal.Decimal `json:"cantidad"`
	CostoMateriaPrima decimal.Decimal `json:"costo_materia_prima"`
	CostoSuministros  decimal.Decimal `json:"costo_suministros"`
	CostoManoObra     decimal.Decimal `json:"costo_mano_obra"`
}

// MovimientoRequest es un ajuste manual de inventario, fuera de cualquier
// desglose: transacción propia e independiente.
type MovimientoRequest struct {
	ProductoID int             `json:"producto_id" validate:"required"`
	Cantidad   decimal.Decimal `json:"cantidad" validate:"required,min=0"`
	Direccion  int             `json:"direccion" validate:"required,oneof=1 -1"`
	AlmacenID  int             `json:"almacen_id"`
	// RecalcularCosto omitido = true: recalcular el promedio ponderado.
	RecalcularCosto *bool `json:"recalcular_costo"`
	// CostoEntrante es el precio unitario de entrada para el promedio; 0.00
	// si el llamador no lo manda (el camino de venta siempre usa 0.00).
	CostoEntrante decimal.Decimal `json:"costo_entrante"`
}

type MovimientoResponse struct {
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	TipoProducto  int             `json:"tipo_producto"`
}
