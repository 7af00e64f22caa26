package tests

import (
	"context"
	"testing"

	"github.com/granaceros-POS/POS-Banckend/internal/dto"
	"github.com/granaceros-POS/POS-Banckend/internal/model"
	"github.com/granaceros-POS/POS-Banckend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ReferenciaRepository stub ──────────────────────────────────────

type opClave struct {
	tipo   string
	codigo int
}

type stubReferenciaRepo struct {
	listas      map[int]int
	operaciones map[opClave]*model.CodigoOperacion
	sesiones    []*model.SesionCaja
	cajeros     []*model.Cajero
	errListas   error
}

func newStubReferenciaRepo() *stubReferenciaRepo {
	return &stubReferenciaRepo{
		listas:      make(map[int]int),
		operaciones: make(map[opClave]*model.CodigoOperacion),
	}
}

func (r *stubReferenciaRepo) ListaPrecios(_ context.Context, tipoVentaID int) (int, error) {
	if r.errListas != nil {
		return 0, r.errListas
	}
	return r.listas[tipoVentaID], nil
}

func (r *stubReferenciaRepo) CodigoOperacion(_ context.Context, tipo string, codigo int) (*model.CodigoOperacion, error) {
	op, ok := r.operaciones[opClave{tipo, codigo}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return op, nil
}

func (r *stubReferenciaRepo) SesionAbierta(_ context.Context, almacenID, cajaID, operacionID int) (*model.SesionCaja, error) {
	for _, s := range r.sesiones {
		if s.AlmacenID == almacenID && s.CajaID == cajaID && s.OperacionID == operacionID && s.Estado == "A" {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubReferenciaRepo) Cajero(_ context.Context, almacenID, codigo, cargo int) (*model.Cajero, error) {
	for _, c := range r.cajeros {
		if c.AlmacenID == almacenID && c.Codigo == codigo && c.Cargo == cargo {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Configuración de tipos de venta ──────────────────────────────────────────

func TestConfiguracion_Restaurante(t *testing.T) {
	repo := newStubReferenciaRepo()
	repo.listas[service.TipoVentaMesa] = 2
	svc := service.NewVentaService(repo, nil)

	resp, err := svc.Configuracion(context.Background(), dto.ConfigVentaRequest{
		TipoVenta: service.TipoVentaMesa,
	})
	require.NoError(t, err)

	assert.Equal(t, "MESA", resp.Descripcion)
	assert.Equal(t, "PARA LA MESA", resp.DescripcionFactura)
	assert.Equal(t, 2, resp.ListaPrecios)
	assert.Equal(t, "N", resp.PruebaFactura)
}

func TestConfiguracion_Distribuidor(t *testing.T) {
	svc := service.NewVentaService(newStubReferenciaRepo(), nil)

	casos := []struct {
		tipo        int
		descripcion string
		factura     string
	}{
		{service.TipoVentaDrive, "INSTITUCIONA", "PARA LLEVAR INSTITUC"},
		{service.TipoVentaMesa, "DISTRI/SUPER", "PARA LLEVAR DISTRIBUI"},
		{service.TipoVentaLlevar, "PUBLICO", "PARA LLEVAR PUBLICO"},
		{service.TipoVentaDescuento, "DISTRIBUIDO", "PARA LLEVAR DISTRIBUI"},
	}
	for _, caso := range casos {
		resp, err := svc.Configuracion(context.Background(), dto.ConfigVentaRequest{
			TipoVenta:    caso.tipo,
			TipoSociedad: service.SociedadDistribuidor,
		})
		require.NoError(t, err)
		assert.Equal(t, caso.descripcion, resp.Descripcion)
		assert.Equal(t, caso.factura, resp.DescripcionFactura)
	}
}

func TestConfiguracion_FacturaDePrueba(t *testing.T) {
	svc := service.NewVentaService(newStubReferenciaRepo(), nil)

	resp, err := svc.Configuracion(context.Background(), dto.ConfigVentaRequest{
		TipoVenta:     service.TipoVentaMesa,
		PruebaFactura: "F",
	})
	require.NoError(t, err)
	assert.Equal(t, "CORTESIA", resp.Descripcion)

	resp, err = svc.Configuracion(context.Background(), dto.ConfigVentaRequest{
		TipoVenta:     service.TipoVentaLlevar,
		PruebaFactura: "f", // se normaliza a mayúsculas
	})
	require.NoError(t, err)
	assert.Equal(t, "VENTA", resp.Descripcion)
}

func TestConfiguracion_TipoDesconocido(t *testing.T) {
	svc := service.NewVentaService(newStubReferenciaRepo(), nil)
	_, err := svc.Configuracion(context.Background(), dto.ConfigVentaRequest{TipoVenta: 500})
	assert.ErrorIs(t, err, service.ErrTipoVentaInvalido)
}

func TestConfiguracion_ListaPreciosCaida(t *testing.T) {
	repo := newStubReferenciaRepo()
	repo.errListas = gorm.ErrInvalidDB
	svc := service.NewVentaService(repo, nil)

	// la lista de precios es accesoria: ante falla se responde con lista 0
	resp, err := svc.Configuracion(context.Background(), dto.ConfigVentaRequest{
		TipoVenta: service.TipoVentaDomicilio,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ListaPrecios)
	assert.Equal(t, "DOMICILIO", resp.Descripcion)
}

func TestTipoVentaValido(t *testing.T) {
	assert.True(t, service.TipoVentaValido(service.TipoVentaDrive))
	assert.True(t, service.TipoVentaValido(service.TipoVentaDescuento))
	assert.False(t, service.TipoVentaValido(959))
	assert.False(t, service.TipoVentaValido(965))
}
