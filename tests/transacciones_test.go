package tests

import (
	"context"
	"testing"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/model"
	"github.com/granaceros-POS/POS-Banckend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory TransaccionRepository stub ─────────────────────────────────────

type stubTransaccionRepo struct {
	vigentes   []model.LineaTransaccion
	historicas []model.LineaTransaccionHistorica
}

func (r *stubTransaccionRepo) DB() *gorm.DB { return nil }

func (r *stubTransaccionRepo) CrearLineaTx(_ *gorm.DB, linea *model.LineaTransaccion) error {
	if linea.ID == uuid.Nil {
		linea.ID = uuid.New()
	}
	r.vigentes = append(r.vigentes, *linea)
	r.historicas = append(r.historicas, model.LineaTransaccionHistorica(*linea))
	return nil
}

func lineaValida() dto.LineaTransaccionRequest {
	return dto.LineaTransaccionRequest{
		AlmacenID:         1,
		NumeroTransaccion: 123456,
		Fecha:             "2026-08-31",
		ProductoID:        100,
		Cantidad:          dec("2"),
		PrecioVenta:       dec("35.00"),
		CostoUnitario:     dec("13.00"),
		Estado:            "V",
		TipoVentaID:       service.TipoVentaMesa,
		NumeroLinea:       1,
		CostoMateriaPrima: dec("8.00"),
		CostoSuministros:  dec("5.00"),
	}
}

func TestRegistrarLinea_DobleCopia(t *testing.T) {
	repo := &stubTransaccionRepo{}
	svc := service.NewTransaccionService(repo)

	resp, err := svc.RegistrarLinea(context.Background(), lineaValida())
	require.NoError(t, err)

	assert.True(t, resp.Registrada)
	assert.Equal(t, 1, resp.NumeroLinea)
	require.Len(t, repo.vigentes, 1)
	require.Len(t, repo.historicas, 1)

	// la copia histórica lleva el mismo payload
	vigente := repo.vigentes[0]
	historica := model.LineaTransaccion(repo.historicas[0])
	assert.Equal(t, vigente, historica)
}

func TestRegistrarLinea_DefaultsDeCampos(t *testing.T) {
	repo := &stubTransaccionRepo{}
	svc := service.NewTransaccionService(repo)

	_, err := svc.RegistrarLinea(context.Background(), lineaValida())
	require.NoError(t, err)

	linea := repo.vigentes[0]
	assert.Equal(t, "N", linea.Despacho)
	// sin vencimiento explícito se usa la fecha de la transacción
	assert.Equal(t, linea.Fecha, linea.Vencimiento)
}

func TestRegistrarLinea_FechaInvalida(t *testing.T) {
	svc := service.NewTransaccionService(&stubTransaccionRepo{})

	req := lineaValida()
	req.Fecha = "31/08/2026"
	_, err := svc.RegistrarLinea(context.Background(), req)
	assert.Error(t, err)
}

func TestRegistrarLinea_VencimientoPropio(t *testing.T) {
	repo := &stubTransaccionRepo{}
	svc := service.NewTransaccionService(repo)

	req := lineaValida()
	req.Vencimiento = "2026-12-15"
	_, err := svc.RegistrarLinea(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "2026-12-15", repo.vigentes[0].Vencimiento.Format("2006-01-02"))
}
