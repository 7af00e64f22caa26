package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/repository"

	"gorm.io/gorm"
)

const (
	// codigoEstadoCaja es el código de operación que marca la apertura de caja
	// en el catálogo ("C", 903). Si falta, es un error de configuración.
	codigoEstadoCaja = 903
	// cargoCajero es el cargo exigido al personal asignado a la caja.
	cargoCajero = 2
)

// CajaService verifica que una caja tenga sesión abierta y cajero asignado
// antes de vender.
type CajaService interface {
	VerificarApertura(ctx context.Context, req dto.AperturaRequest) (*dto.AperturaResponse, error)
}

type cajaService struct {
	referencias repository.ReferenciaRepository
}

func NewCajaService(referencias repository.ReferenciaRepository) CajaService {
	return &cajaService{referencias: referencias}
}

func (s *cajaService) VerificarApertura(ctx context.Context, req dto.AperturaRequest) (*dto.AperturaResponse, error) {
	// modo de prueba: se omite toda verificación contra la base
	if prueba := strings.ToUpper(req.Prueba); prueba != "" && prueba != "N" {
		return &dto.AperturaResponse{
			Abierta: true,
			Mensaje: "Modo de prueba activo.",
			Cajero:  &dto.CajeroInfo{Nombre: "PRUEBA"},
		}, nil
	}

	op, err := s.referencias.CodigoOperacion(ctx, "C", codigoEstadoCaja)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("código de estado de caja %d: %w", codigoEstadoCaja, ErrReferenciaFaltante)
		}
		return nil, err
	}

	sesion, err := s.referencias.SesionAbierta(ctx, req.AlmacenID, req.CajaID, op.Codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCajaSinApertura
		}
		return nil, err
	}

	cajero, err := s.referencias.Cajero(ctx, req.AlmacenID, sesion.CajeroID, cargoCajero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCajaSinCajero
		}
		return nil, err
	}

	return &dto.AperturaResponse{
		Abierta: true,
		Mensaje: "Caja verificada.",
		Cajero: &dto.CajeroInfo{
			Codigo: cajero.Codigo,
			Nombre: cajero.Nombre,
			Cargo:  cajero.Cargo,
		},
	}, nil
}
