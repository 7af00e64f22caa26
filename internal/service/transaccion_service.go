package service

import (
	"context"
	"fmt"
	"time"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/model"
	"github.com/granaceros-POS/POS-Banckend/internal/repository"

	"gorm.io/gorm"
)

// TransaccionService registra líneas del libro de transacciones.
type TransaccionService interface {
	RegistrarLinea(ctx context.Context, req dto.LineaTransaccionRequest) (*dto.LineaTransaccionResponse, error)
}

type transaccionService struct {
	repo repository.TransaccionRepository
}

func NewTransaccionService(repo repository.TransaccionRepository) TransaccionService {
	return &transaccionService{repo: repo}
}

// RegistrarLinea inserta la línea en la tabla vigente y en la histórica dentro
// de una misma transacción: o quedan las dos copias o ninguna.
func (s *transaccionService) RegistrarLinea(ctx context.Context, req dto.LineaTransaccionRequest) (*dto.LineaTransaccionResponse, error) {
	linea, err := lineaFromRequest(req)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CrearLineaTx(tx, linea)
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.LineaTransaccionResponse{
		ID:          linea.ID.String(),
		NumeroLinea: linea.NumeroLinea,
		Registrada:  true,
	}, nil
}

func lineaFromRequest(req dto.LineaTransaccionRequest) (*model.LineaTransaccion, error) {
	fecha, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha inválida: %w", err)
	}
	vencimiento := fecha
	if req.Vencimiento != "" {
		vencimiento, err = time.Parse("2006-01-02", req.Vencimiento)
		if err != nil {
			return nil, fmt.Errorf("vencimiento inválido: %w", err)
		}
	}
	despacho := req.Despacho
	if despacho == "" {
		despacho = "N"
	}

	return &model.LineaTransaccion{
		AlmacenID:         req.AlmacenID,
		AlmacenDestinoID:  req.AlmacenDestinoID,
		NumeroTransaccion: req.NumeroTransaccion,
		Fecha:             fecha,
		DineroID:          req.DineroID,
		TurnoID:           req.TurnoID,
		OrdenID:           req.OrdenID,
		ProductoID:        req.ProductoID,
		Cantidad:          req.Cantidad,
		PrecioVenta:       req.PrecioVenta,
		CostoUnitario:     req.CostoUnitario,
		Estado:            req.Estado,
		TipoVentaID:       req.TipoVentaID,
		Despacho:          despacho,
		TotalDescuento:    req.TotalDescuento,
		ValorIVA:          req.ValorIVA,
		TasaIVA:           req.TasaIVA,
		NumeroLinea:       req.NumeroLinea,
		Comanda:           req.Comanda,
		NIT:               req.NIT,
		MotivoID:          req.MotivoID,
		Lote:              req.Lote,
		Vencimiento:       vencimiento,
		CentroCostoID:     req.CentroCostoID,
		FacturaID:         req.FacturaID,
		HoraRecepcion:     req.HoraRecepcion,
		CostoMateriaPrima: req.CostoMateriaPrima,
		CostoSuministros:  req.CostoSuministros,
		CostoManoObra:     req.CostoManoObra,
	}, nil
}
