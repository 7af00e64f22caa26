package model

// TipoVenta asocia cada código de tipo de venta (960..964) con su lista de
// precios. Solo lectura.
type TipoVenta struct {
	Codigo       int `gorm:"primaryKey;autoIncrement:false"`
	ListaPrecios int `gorm:"not null;default:0"`
}

func (TipoVenta) TableName() string { return "tipos_venta" }
