package router

import (
	"time"

	"github.com/granaceros-POS/POS-Banckend/internal/config"
	"github.com/granaceros-POS/POS-Banckend/internal/handler"
	"github.com/granaceros-POS/POS-Banckend/internal/middleware"
	"github.com/granaceros-POS/POS-Banckend/internal/repository"
	"github.com/granaceros-POS/POS-Banckend/internal/service"
	"github.com/granaceros-POS/POS-Banckend/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(rdb, cfg.RateLimitPorMinuto, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	inventarioRepo := repository.NewInventarioRepository(db)
	recetaRepo := repository.NewRecetaRepository(db)
	transaccionRepo := repository.NewTransaccionRepository(db)
	referenciaRepo := repository.NewReferenciaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	politica := service.PoliticaCostos{
		SiempreEstimado:  cfg.SiempreEstimado(),
		EstimadoSinStock: cfg.EstimadoSinStock(),
	}
	inventarioSvc := service.NewInventarioService(inventarioRepo, politica)
	desgloseSvc := service.NewDesgloseService(recetaRepo, inventarioSvc, inventarioRepo, dispatcher)
	ventaSvc := service.NewVentaService(referenciaRepo, rdb)
	cajaSvc := service.NewCajaService(referenciaRepo)
	transaccionSvc := service.NewTransaccionService(transaccionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	inventarioH := handler.NewInventarioHandler(desgloseSvc, inventarioSvc, cfg.AlmacenID)
	ventasH := handler.NewVentasHandler(ventaSvc)
	cajaH := handler.NewCajaHandler(cajaSvc, cfg.AlmacenID)
	transaccionesH := handler.NewTransaccionesHandler(transaccionSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		inventario := v1.Group("/inventario")
		{
			inventario.POST("/desglose", inventarioH.Desglose)
			inventario.POST("/movimiento", inventarioH.Movimiento)
		}

		v1.POST("/transacciones/linea", transaccionesH.RegistrarLinea)
		v1.GET("/ventas/configuracion", ventasH.Configuracion)
		v1.GET("/caja/apertura", cajaH.VerificarApertura)
	}

	return r
}
