package dto

// AperturaRequest verifica que una caja tenga sesión abierta y cajero asignado.
type AperturaRequest struct {
	CajaID    int    `form:"caja" validate:"required"`
	AlmacenID int    `form:"almacen"`
	Prueba    string `form:"prueba"`
}

type CajeroInfo struct {
	Codigo int    `json:"codigo"`
	Nombre string `json:"nombre"`
	Cargo  int    `json:"cargo"`
}

type AperturaResponse struct {
	Abierta bool        `json:"abierta"`
	Mensaje string      `json:"mensaje"`
	Cajero  *CajeroInfo `json:"cajero,omitempty"`
}
