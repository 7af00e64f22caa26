package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clasificación de productos (tipo_producto). El tipo 21 marca una receta:
// el desglose recursa en lugar de descontar inventario.
const (
	TipoMateriaPrima = 1
	TipoSuministro   = 2
	TipoManoObra     = 3
	TipoReceta       = 21
)

// InventarioProducto es la posición de inventario de un producto en un almacén.
// Una fila por (almacen_id, producto_id); la cantidad puede quedar negativa,
// el costo promedio nunca.
type InventarioProducto struct {
	AlmacenID     int             `gorm:"primaryKey;autoIncrement:false"`
	ProductoID    int             `gorm:"primaryKey;autoIncrement:false"`
	Cantidad      decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	CostoPromedio decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TipoProducto  int             `gorm:"not null;default:1"`
	UpdatedAt     time.Time
}

func (InventarioProducto) TableName() string { return "inventario_productos" }

// CostoEstimado es el costo alternativo mantenido externamente por
// (almacen, producto). Este servicio solo lo lee.
type CostoEstimado struct {
	AlmacenID  int             `gorm:"primaryKey;autoIncrement:false"`
	ProductoID int             `gorm:"primaryKey;autoIncrement:false"`
	Valor      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
}

func (CostoEstimado) TableName() string { return "costos_estimados" }

// Producto es el catálogo mínimo que necesita el desglose: la clasificación
// del componente decide si se recursa (TipoReceta) y a qué balde de costo
// aporta una hoja.
type Producto struct {
	Codigo int    `gorm:"primaryKey;autoIncrement:false"`
	Nombre string `gorm:"not null"`
	Tipo   int    `gorm:"not null;default:1"`
}

func (Producto) TableName() string { return "productos" }
