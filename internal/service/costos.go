package service

import "github.com/shopspring/decimal"

// PoliticaCostos son los interruptores globales que deciden la base de costo
// antes del promedio ponderado. Se configuran una vez por despliegue y se
// pasan explícitamente; nadie lee estado global.
type PoliticaCostos struct {
	// SiempreEstimado: usar siempre el costo estimado como base.
	SiempreEstimado bool
	// EstimadoSinStock: usar el estimado solo cuando la existencia es cero.
	EstimadoSinStock bool
}

// CostoBase elige la base de costo para un movimiento. Función pura: mismas
// entradas, misma salida. Un estimado ausente llega como 0.00.
func (p PoliticaCostos) CostoBase(costoActual, costoEstimado, cantidadActual decimal.Decimal) decimal.Decimal {
	switch {
	case p.SiempreEstimado:
		return costoEstimado
	case p.EstimadoSinStock && cantidadActual.IsZero():
		return costoEstimado
	default:
		return costoActual
	}
}

// AcumuladorCostos es el triple de costos que el desglose hace subir por el
// árbol de la receta: materia prima, suministros y mano de obra. Valor, no
// referencia compartida; cada rama devuelve el suyo y el padre los combina.
type AcumuladorCostos struct {
	MateriaPrima decimal.Decimal
	Suministros  decimal.Decimal
	ManoObra     decimal.Decimal
}

// Add combina dos acumuladores componente a componente.
func (a AcumuladorCostos) Add(b AcumuladorCostos) AcumuladorCostos {
	return AcumuladorCostos{
		MateriaPrima: a.MateriaPrima.Add(b.MateriaPrima),
		Suministros:  a.Suministros.Add(b.Suministros),
		ManoObra:     a.ManoObra.Add(b.ManoObra),
	}
}

// Round devuelve el acumulador con los tres totales redondeados a 2 decimales.
func (a AcumuladorCostos) Round() AcumuladorCostos {
	return AcumuladorCostos{
		MateriaPrima: a.MateriaPrima.Round(2),
		Suministros:  a.Suministros.Round(2),
		ManoObra:     a.ManoObra.Round(2),
	}
}
