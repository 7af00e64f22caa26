package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineaTransaccion es una línea del libro de transacciones. El llamador la
// construye completa (costos incluidos); este servicio la inserta con el mismo
// payload en la tabla vigente y en la histórica, y jamás la modifica.
type LineaTransaccion struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	AlmacenID         int             `gorm:"not null;index"`
	AlmacenDestinoID  int             `gorm:"not null;default:0"`
	NumeroTransaccion int             `gorm:"not null"`
	Fecha             time.Time       `gorm:"type:date;not null"`
	DineroID          int             `gorm:"not null;default:0"`
	TurnoID           int             `gorm:"not null;default:0"`
	OrdenID           int             `gorm:"not null;default:0"`
	ProductoID        int             `gorm:"not null;index"`
	Cantidad          decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	PrecioVenta       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostoUnitario     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado            string          `gorm:"size:1;not null"`
	TipoVentaID       int             `gorm:"not null"`
	Despacho          string          `gorm:"size:1;not null;default:'N'"`
	TotalDescuento    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ValorIVA          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TasaIVA           decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	NumeroLinea       int             `gorm:"not null"`
	Comanda           string          `gorm:"size:20"`
	NIT               decimal.Decimal `gorm:"type:decimal(14,0);not null;default:0"`
	MotivoID          int             `gorm:"not null;default:0"`
	Lote              int             `gorm:"not null;default:0"`
	Vencimiento       time.Time       `gorm:"type:date"`
	CentroCostoID     int             `gorm:"not null;default:0"`
	FacturaID         int             `gorm:"not null;default:0"`
	HoraRecepcion     string          `gorm:"size:8"`

	// Costos acumulados por el desglose de la receta vendida.
	CostoMateriaPrima decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CostoSuministros  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CostoManoObra     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time
}

func (LineaTransaccion) TableName() string { return "transacciones" }

// LineaTransaccionHistorica es la copia idéntica que va a la tabla histórica.
// Mismo layout, distinta tabla; se construye por conversión de tipo.
type LineaTransaccionHistorica LineaTransaccion

func (LineaTransaccionHistorica) TableName() string { return "transacciones_historico" }
