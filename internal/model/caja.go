package model

// CodigoOperacion es el catálogo de códigos de operación por tipo
// ("C" caja, "P" personal). La verificación de apertura exige que el
// código de estado de caja (903) exista aquí.
type CodigoOperacion struct {
	Tipo   string `gorm:"primaryKey;size:1"`
	Codigo int    `gorm:"primaryKey;autoIncrement:false"`
	Nombre string `gorm:"not null"`
}

func (CodigoOperacion) TableName() string { return "codigos_operacion" }

// SesionCaja es el registro de apertura de una caja en un almacén.
// Estado "A" = activa.
type SesionCaja struct {
	AlmacenID   int    `gorm:"primaryKey;autoIncrement:false"`
	CajaID      int    `gorm:"primaryKey;autoIncrement:false"`
	OperacionID int    `gorm:"primaryKey;autoIncrement:false"`
	CajeroID    int    `gorm:"not null"`
	DineroID    int    `gorm:"not null;default:0"`
	Estado      string `gorm:"size:1;not null;default:'A'"`
}

func (SesionCaja) TableName() string { return "sesiones_caja" }

// Cajero es el personal asignable a una caja. Cargo 2 = cajero.
type Cajero struct {
	AlmacenID int    `gorm:"primaryKey;autoIncrement:false"`
	Codigo    int    `gorm:"primaryKey;autoIncrement:false"`
	Nombre    string `gorm:"not null"`
	Cargo     int    `gorm:"not null"`
}

func (Cajero) TableName() string { return "cajeros" }
