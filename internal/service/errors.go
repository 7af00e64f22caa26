package service

import "errors"

// Errores centinela del núcleo de costos. Los servicios internos los propagan
// sin envolver en respuestas: el handler decide el código HTTP y el coordinador
// de transacción decide el rollback.
var (
	// ErrTipoVentaInvalido: el código de tipo de venta no existe en el catálogo
	// de ventas. Se detecta antes de abrir la transacción de desglose.
	ErrTipoVentaInvalido = errors.New("código de tipo de venta no válido")

	// ErrRecetaCiclica: un producto reapareció en su propia cadena de ancestros
	// durante el desglose. El grafo de recetas debe ser acíclico.
	ErrRecetaCiclica = errors.New("la receta contiene un ciclo")

	// ErrReferenciaFaltante: falta un código de configuración requerido
	// (p. ej. el código de estado de caja en el catálogo de operaciones).
	ErrReferenciaFaltante = errors.New("código de referencia no definido")

	// ErrCajaSinApertura / ErrCajaSinCajero: la verificación de caja falló.
	ErrCajaSinApertura = errors.New("esta caja no tiene apertura")
	ErrCajaSinCajero   = errors.New("esta caja no tiene cajero asignado")

	// ErrDireccionInvalida: el sentido del movimiento debe ser +1 o -1.
	ErrDireccionInvalida = errors.New("dirección de movimiento inválida")
)
