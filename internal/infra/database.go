package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/granaceros-POS/POS-Banckend/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that GORM
// cannot express on its own.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates / updates all tables. Also used by integration tests
// against a disposable container.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Producto{},
		&model.InventarioProducto{},
		&model.CostoEstimado{},
		&model.ComponenteReceta{},
		&model.LineaTransaccion{},
		&model.LineaTransaccionHistorica{},
		&model.TipoVenta{},
		&model.CodigoOperacion{},
		&model.SesionCaja{},
		&model.Cajero{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// gen_random_uuid() for transaction line PKs
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		// partial index for the open-session lookup used on every breakdown
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_sesiones_caja_abiertas') THEN
		    CREATE INDEX idx_sesiones_caja_abiertas
		        ON sesiones_caja (almacen_id, caja_id)
		        WHERE estado = 'A';
		  END IF;
		END $$`,
		// recipe explosion always scans by parent + sale type
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_componentes_receta_padre') THEN
		    CREATE INDEX idx_componentes_receta_padre
		        ON componentes_receta (producto_id, tipo_venta_id);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
