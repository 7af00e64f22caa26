package model

import "github.com/shopspring/decimal"

// ComponenteReceta es una línea de la fórmula de un producto: cuánto del
// componente consume una unidad del padre, para un tipo de venta dado.
// Solo lectura desde este servicio; un producto sin filas es una hoja.
type ComponenteReceta struct {
	ProductoID   int             `gorm:"primaryKey;autoIncrement:false"`
	TipoVentaID  int             `gorm:"primaryKey;autoIncrement:false"`
	ComponenteID int             `gorm:"primaryKey;autoIncrement:false"`
	Ratio        decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	EsSuministro bool            `gorm:"not null;default:false"`

	// TipoComponente viene del JOIN con productos; no es columna propia.
	TipoComponente int `gorm:"->;-:migration"`
}

func (ComponenteReceta) TableName() string { return "componentes_receta" }
