package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/granaceros-POS/POS-Banckend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const QueueAlertasStock = "jobs:alertas_stock"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AlertaStockPayload nombra las posiciones tocadas por un desglose para
// revisarlas fuera de la transacción.
type AlertaStockPayload struct {
	AlmacenID int   `json:"almacen_id"`
	Productos []int `json:"productos"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher { return &Dispatcher{rdb: rdb} }

// EnqueueAlertaStock pushes a stock-alert job. Best-effort: el desglose ya
// hizo commit cuando se encola, un fallo aquí solo pierde la alerta.
func (d *Dispatcher) EnqueueAlertaStock(ctx context.Context, payload AlertaStockPayload) error {
	return d.enqueue(ctx, QueueAlertasStock, "alerta_stock", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the alert queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, invRepo repository.InventarioRepository, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, invRepo, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, invRepo repository.InventarioRepository, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAlertasStock).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, invRepo, result[1])
		}
	}
}

func processJob(ctx context.Context, invRepo repository.InventarioRepository, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	if job.Type != "alerta_stock" {
		log.Warn().Str("type", job.Type).Msg("unknown job type, dropped")
		return
	}

	var payload AlertaStockPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal alerta_stock payload")
		return
	}

	posiciones, err := invRepo.ListarPosiciones(ctx, payload.AlmacenID, payload.Productos)
	if err != nil {
		log.Error().Err(err).Int("almacen", payload.AlmacenID).Msg("alerta_stock: no se pudieron leer posiciones")
		return
	}
	for _, pos := range posiciones {
		if pos.Cantidad.IsPositive() {
			continue
		}
		log.Warn().
			Int("almacen", pos.AlmacenID).
			Int("producto", pos.ProductoID).
			Str("cantidad", pos.Cantidad.String()).
			Msg("posición de inventario agotada tras desglose")
	}
}
