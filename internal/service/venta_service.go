package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Tipos de venta conocidos (960..964).
const (
	TipoVentaDrive     = 960
	TipoVentaMesa      = 961
	TipoVentaDomicilio = 962
	TipoVentaLlevar    = 963
	TipoVentaDescuento = 964
)

// SociedadDistribuidor es el tipo de sociedad que cambia los rótulos
// de restaurante por los de distribuidor.
const SociedadDistribuidor = 3

const cacheTTLConfigVenta = 5 * time.Minute

// TipoVentaValido reporta si el código pertenece al catálogo de ventas.
// El desglose lo consulta antes de abrir su transacción.
func TipoVentaValido(codigo int) bool {
	return codigo >= TipoVentaDrive && codigo <= TipoVentaDescuento
}

// VentaService resuelve la configuración de un tipo de venta: descripción,
// rótulo de factura y lista de precios.
type VentaService interface {
	Configuracion(ctx context.Context, req dto.ConfigVentaRequest) (*dto.ConfigVentaResponse, error)
}

type ventaService struct {
	referencias repository.ReferenciaRepository
	rdb         *redis.Client
}

// NewVentaService crea el servicio; rdb puede ser nil y la caché queda apagada.
func NewVentaService(referencias repository.ReferenciaRepository, rdb *redis.Client) VentaService {
	return &ventaService{referencias: referencias, rdb: rdb}
}

func (s *ventaService) Configuracion(ctx context.Context, req dto.ConfigVentaRequest) (*dto.ConfigVentaResponse, error) {
	prueba := strings.ToUpper(req.PruebaFactura)
	if prueba == "" {
		prueba = "N"
	}

	cacheKey := fmt.Sprintf("venta:config:%d:%d:%s", req.TipoVenta, req.TipoSociedad, prueba)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached dto.ConfigVentaResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	descripcion, descripcionFactura, err := rotulosVenta(req.TipoVenta, req.TipoSociedad, prueba)
	if err != nil {
		return nil, err
	}

	lista, err := s.referencias.ListaPrecios(ctx, req.TipoVenta)
	if err != nil {
		// la lista de precios es accesoria: ante falla se asume 0
		log.Error().Err(err).Int("tipo_venta", req.TipoVenta).Msg("lista de precios no disponible, se asume 0")
		lista = 0
	}

	resp := &dto.ConfigVentaResponse{
		TipoVenta:          req.TipoVenta,
		Descripcion:        descripcion,
		DescripcionFactura: descripcionFactura,
		ListaPrecios:       lista,
		PruebaFactura:      prueba,
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(resp); err == nil {
			// best-effort: una caché caída no afecta la respuesta
			_ = s.rdb.Set(ctx, cacheKey, raw, cacheTTLConfigVenta).Err()
		}
	}
	return resp, nil
}

// rotulosVenta mapea (código, sociedad, indicador de prueba) a los rótulos de
// pantalla y de factura.
func rotulosVenta(codigo, sociedad int, prueba string) (string, string, error) {
	distribuidor := sociedad == SociedadDistribuidor

	switch codigo {
	case TipoVentaDrive:
		if distribuidor {
			return "INSTITUCIONA", "PARA LLEVAR INSTITUC", nil
		}
		return "DRIVE", "DRIVE", nil

	case TipoVentaMesa:
		if distribuidor {
			return "DISTRI/SUPER", "PARA LLEVAR DISTRIBUI", nil
		}
		if prueba == "F" {
			return "CORTESIA", "PARA LA MESA", nil
		}
		return "MESA", "PARA LA MESA", nil

	case TipoVentaDomicilio:
		return "DOMICILIO", "DOMICILIO", nil

	case TipoVentaLlevar:
		if distribuidor {
			return "PUBLICO", "PARA LLEVAR PUBLICO", nil
		}
		if prueba == "F" {
			return "VENTA", "PARA LLEVAR", nil
		}
		return "LLEVAR", "PARA LLEVAR", nil

	case TipoVentaDescuento:
		if distribuidor {
			return "DISTRIBUIDO", "PARA LLEVAR DISTRIBUI", nil
		}
		return "DESCUENTO", "PARA LA MESA", nil
	}
	return "", "", fmt.Errorf("tipo de venta %d: %w", codigo, ErrTipoVentaInvalido)
}
