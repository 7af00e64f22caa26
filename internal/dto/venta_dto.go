package dto

// ConfigVentaRequest pide la configuración de un tipo de venta (960..964).
type ConfigVentaRequest struct {
	TipoVenta     int    `form:"tipo_venta" validate:"required"`
	TipoSociedad  int    `form:"tipo_sociedad"`
	PruebaFactura string `form:"prueba_factura"`
}

type ConfigVentaResponse struct {
	TipoVenta          int    `json:"tipo_venta"`
	Descripcion        string `json:"descripcion"`
	DescripcionFactura string `json:"descripcion_factura"`
	ListaPrecios       int    `json:"lista_precios"`
	PruebaFactura      string `json:"prueba_factura"`
}
