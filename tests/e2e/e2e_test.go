//go:build integration

package e2e

// End-to-end integration tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered:
//   - desglose completo de una receta con sub-receta (costos + descuento de stock)
//   - rollback total cuando la receta contiene un ciclo a media explosión
//   - promedio ponderado sobre un movimiento manual de entrada
//   - verificación de apertura de caja (sin sesión / con sesión)
//   - configuración de tipo de venta con caché Redis
//   - doble inserción de líneas de transacción (vigente + histórica)

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/granaceros-POS/POS-Banckend/internal/config"
	"github.com/granaceros-POS/POS-Banckend/internal/infra"
	"github.com/granaceros-POS/POS-Banckend/internal/model"
	"github.com/granaceros-POS/POS-Banckend/internal/router"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func posicion(t *testing.T, db *gorm.DB, almacen, producto int) model.InventarioProducto {
	t.Helper()
	var pos model.InventarioProducto
	require.NoError(t, db.Where("almacen_id = ? AND producto_id = ?", almacen, producto).First(&pos).Error)
	return pos
}

// ── Test env ─────────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("granaceros_test"),
		tcPostgres.WithUsername("granaceros"),
		tcPostgres.WithPassword("granaceros"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:                  8000,
		Env:                   "test",
		DatabaseURL:           pgURL,
		RedisURL:              rdURL,
		WorkerPoolSize:        1,
		AlmacenID:             1,
		CostoSiempreEstimado:  "N",
		CostoEstimadoSinStock: "N",
		RateLimitPorMinuto:    10000,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	seed(t, db)

	srv := httptest.NewServer(router.New(cfg, db, rdb))
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, db: db}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seed carga el catálogo mínimo: una hamburguesa (100) con carne (10),
// empaque (20) y media porción de la sub-receta salsa (300), que a su vez
// consume tomate (30). El producto 400 forma un ciclo con el 500.
func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	productos := []model.Producto{
		{Codigo: 10, Nombre: "CARNE", Tipo: model.TipoMateriaPrima},
		{Codigo: 20, Nombre: "EMPAQUE", Tipo: model.TipoSuministro},
		{Codigo: 30, Nombre: "TOMATE", Tipo: model.TipoMateriaPrima},
		{Codigo: 100, Nombre: "HAMBURGUESA", Tipo: model.TipoReceta},
		{Codigo: 300, Nombre: "SALSA", Tipo: model.TipoReceta},
		{Codigo: 400, Nombre: "COMBO A", Tipo: model.TipoReceta},
		{Codigo: 500, Nombre: "COMBO B", Tipo: model.TipoReceta},
	}
	require.NoError(t, db.Create(&productos).Error)

	posiciones := []model.InventarioProducto{
		{AlmacenID: 1, ProductoID: 10, Cantidad: dec("50"), CostoPromedio: dec("4.00"), TipoProducto: model.TipoMateriaPrima},
		{AlmacenID: 1, ProductoID: 20, Cantidad: dec("50"), CostoPromedio: dec("2.00"), TipoProducto: model.TipoSuministro},
		{AlmacenID: 1, ProductoID: 30, Cantidad: dec("100"), CostoPromedio: dec("5.00"), TipoProducto: model.TipoMateriaPrima},
	}
	require.NoError(t, db.Create(&posiciones).Error)

	componentes := []model.ComponenteReceta{
		{ProductoID: 100, TipoVentaID: 961, ComponenteID: 10, Ratio: dec("2")},
		{ProductoID: 100, TipoVentaID: 961, ComponenteID: 20, Ratio: dec("2.5"), EsSuministro: true},
		{ProductoID: 100, TipoVentaID: 961, ComponenteID: 300, Ratio: dec("0.5")},
		{ProductoID: 300, TipoVentaID: 961, ComponenteID: 30, Ratio: dec("4")},
		// ciclo: 400 consume tomate y luego al 500, que vuelve al 400
		{ProductoID: 400, TipoVentaID: 961, ComponenteID: 30, Ratio: dec("1")},
		{ProductoID: 400, TipoVentaID: 961, ComponenteID: 500, Ratio: dec("1")},
		{ProductoID: 500, TipoVentaID: 961, ComponenteID: 400, Ratio: dec("1")},
	}
	require.NoError(t, db.Create(&componentes).Error)

	require.NoError(t, db.Create(&model.TipoVenta{Codigo: 961, ListaPrecios: 2}).Error)
	require.NoError(t, db.Create(&model.CodigoOperacion{Tipo: "C", Codigo: 903, Nombre: "APERTURA CAJA"}).Error)
	require.NoError(t, db.Create(&model.SesionCaja{AlmacenID: 1, CajaID: 4, OperacionID: 903, CajeroID: 55, Estado: "A"}).Error)
	require.NoError(t, db.Create(&model.Cajero{AlmacenID: 1, Codigo: 55, Nombre: "MARIA LOPEZ", Cargo: 2}).Error)
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_DesgloseCompleto(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/inventario/desglose", jsonBody(t, map[string]any{
		"producto_id":   100,
		"cantidad":      "1",
		"tipo_venta_id": 961,
		"almacen_id":    1,
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		CostoMateriaPrima decimal.Decimal `json:"costo_materia_prima"`
		CostoSuministros  decimal.Decimal `json:"costo_suministros"`
		CostoManoObra     decimal.Decimal `json:"costo_mano_obra"`
	}
	decodeJSON(t, resp, &out)

	// carne 2×4.00 + tomate (0.5×4)×5.00 = 8.00 + 10.00
	assert.True(t, out.CostoMateriaPrima.Equal(dec("18.00")), "materia prima: %s", out.CostoMateriaPrima)
	assert.True(t, out.CostoSuministros.Equal(dec("5.00")), "suministros: %s", out.CostoSuministros)
	assert.True(t, out.CostoManoObra.IsZero())

	assert.True(t, posicion(t, env.db, 1, 10).Cantidad.Equal(dec("48")))
	assert.True(t, posicion(t, env.db, 1, 20).Cantidad.Equal(dec("47.5")))
	assert.True(t, posicion(t, env.db, 1, 30).Cantidad.Equal(dec("98")))
}

func TestE2E_CicloHaceRollbackTotal(t *testing.T) {
	env := setupTestEnv(t)
	antes := posicion(t, env.db, 1, 30).Cantidad

	// el componente 30 (hoja) se procesa antes que el 500 (ciclo); al detectar
	// el ciclo toda la transacción se revierte, incluido ese descuento
	resp := do(t, env.server, http.MethodPost, "/v1/inventario/desglose", jsonBody(t, map[string]any{
		"producto_id":   400,
		"cantidad":      "1",
		"tipo_venta_id": 961,
		"almacen_id":    1,
	}))
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	resp.Body.Close()

	assert.True(t, posicion(t, env.db, 1, 30).Cantidad.Equal(antes))
}

func TestE2E_MovimientoEntrada(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/inventario/movimiento", jsonBody(t, map[string]any{
		"producto_id":    10,
		"cantidad":       "50",
		"direccion":      1,
		"almacen_id":     1,
		"costo_entrante": "6.00",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		CostoUnitario decimal.Decimal `json:"costo_unitario"`
	}
	decodeJSON(t, resp, &out)

	// (4.00×50 + 6.00×50) / 100 = 5.00
	assert.True(t, out.CostoUnitario.Equal(dec("5.00")), "costo: %s", out.CostoUnitario)

	pos := posicion(t, env.db, 1, 10)
	assert.True(t, pos.Cantidad.Equal(dec("100")))
	assert.True(t, pos.CostoPromedio.Equal(dec("5.00")))
}

func TestE2E_AperturaCaja(t *testing.T) {
	env := setupTestEnv(t)

	// caja con sesión activa
	resp := do(t, env.server, http.MethodGet, "/v1/caja/apertura?caja=4&almacen=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Abierta bool `json:"abierta"`
		Cajero  *struct {
			Nombre string `json:"nombre"`
		} `json:"cajero"`
	}
	decodeJSON(t, resp, &out)
	assert.True(t, out.Abierta)
	require.NotNil(t, out.Cajero)
	assert.Equal(t, "MARIA LOPEZ", out.Cajero.Nombre)

	// caja sin apertura
	resp = do(t, env.server, http.MethodGet, "/v1/caja/apertura?caja=9&almacen=1", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestE2E_ConfiguracionVentaConCache(t *testing.T) {
	env := setupTestEnv(t)

	for i := 0; i < 2; i++ { // la segunda vuelta sale de la caché Redis
		resp := do(t, env.server, http.MethodGet, "/v1/ventas/configuracion?tipo_venta=961", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			Descripcion  string `json:"descripcion"`
			ListaPrecios int    `json:"lista_precios"`
		}
		decodeJSON(t, resp, &out)
		assert.Equal(t, "MESA", out.Descripcion)
		assert.Equal(t, 2, out.ListaPrecios)
	}
}

func TestE2E_RegistrarLineaTransaccion(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/v1/transacciones/linea", jsonBody(t, map[string]any{
		"almacen_id":          1,
		"numero_transaccion":  123456,
		"fecha":               "2026-08-31",
		"producto_id":         100,
		"cantidad":            "2",
		"precio_venta":        "35.00",
		"costo_unitario":      "13.00",
		"estado":              "V",
		"tipo_venta_id":       961,
		"numero_linea":        1,
		"costo_materia_prima": "18.00",
		"costo_suministros":   "5.00",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	var vigentes, historicas int64
	require.NoError(t, env.db.Model(&model.LineaTransaccion{}).Count(&vigentes).Error)
	require.NoError(t, env.db.Model(&model.LineaTransaccionHistorica{}).Count(&historicas).Error)
	assert.Equal(t, int64(1), vigentes)
	assert.Equal(t, int64(1), historicas)
}
