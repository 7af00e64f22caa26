package dto

import "github.com/shopspring/decimal"

// LineaTransaccionRequest trae la línea completa del libro, con los costos ya
// calculados por el llamador. Las fechas llegan como YYYY-MM-DD.
type LineaTransaccionRequest struct {
	AlmacenID         int             `json:"almacen_id" validate:"required"`
	AlmacenDestinoID  int             `json:"almacen_destino_id"`
	NumeroTransaccion int             `json:"numero_transaccion" validate:"required"`
	Fecha             string          `json:"fecha" validate:"required,datetime=2006-01-02"`
	DineroID          int             `json:"dinero_id"`
	TurnoID           int             `json:"turno_id"`
	OrdenID           int             `json:"orden_id"`
	ProductoID        int             `json:"producto_id" validate:"required"`
	Cantidad          decimal.Decimal `json:"cantidad" validate:"required"`
	PrecioVenta       decimal.Decimal `json:"precio_venta"`
	CostoUnitario     decimal.Decimal `json:"costo_unitario"`
	Estado            string          `json:"estado" validate:"required,len=1"`
	TipoVentaID       int             `json:"tipo_venta_id" validate:"required"`
	Despacho          string          `json:"despacho"`
	TotalDescuento    decimal.Decimal `json:"total_descuento"`
	ValorIVA          decimal.Decimal `json:"valor_iva"`
	TasaIVA           decimal.Decimal `json:"tasa_iva"`
	NumeroLinea       int             `json:"numero_linea" validate:"required"`
	Comanda           string          `json:"comanda"`
	NIT               decimal.Decimal `json:"nit"`
	MotivoID          int             `json:"motivo_id"`
	Lote              int             `json:"lote"`
	Vencimiento       string          `json:"vencimiento" validate:"omitempty,datetime=2006-01-02"`
	CentroCostoID     int             `json:"centro_costo_id"`
	FacturaID         int             `json:"factura_id"`
	HoraRecepcion     string          `json:"hora_recepcion"`
	CostoMateriaPrima decimal.Decimal `json:"costo_materia_prima"`
	CostoSuministros  decimal.Decimal `json:"costo_suministros"`
	CostoManoObra     decimal.Decimal `json:"costo_mano_obra"`
}

type LineaTransaccionResponse struct {
	ID          string `json:"id"`
	NumeroLinea int    `json:"numero_linea"`
	Registrada  bool   `json:"registrada"`
}
