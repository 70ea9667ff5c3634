package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lizet96/hospital-system/config"
	"github.com/lizet96/hospital-system/database"
	"github.com/lizet96/hospital-system/logger"
	"github.com/lizet96/hospital-system/repository"
	"github.com/lizet96/hospital-system/repository/memoria"
	"github.com/lizet96/hospital-system/repository/postgres"
)

// entorno reúne lo que comparten los subcomandos
type entorno struct {
	cfg   *config.Config
	log   *zap.Logger
	pool  *pgxpool.Pool
	repos repository.Repositorios
}

func cargarEntorno() (*entorno, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuración inválida: %w", err)
	}
	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: cfg.LogOutput})
	if err != nil {
		return nil, fmt.Errorf("crear logger: %w", err)
	}
	return &entorno{cfg: cfg, log: log}, nil
}

// abrirAlmacen conecta los repositorios según STORAGE
func (e *entorno) abrirAlmacen(ctx context.Context) error {
	if e.cfg.Storage == config.StorageMemory {
		e.log.Warn("Usando almacenamiento en memoria; los datos se pierden al reiniciar")
		e.repos = memoria.NewStore().Repositorios()
		return nil
	}
	pool, err := database.NewPool(ctx, database.PoolConfig{
		URL:      e.cfg.DatabaseURL,
		MaxConns: e.cfg.DBMaxConns,
		MinConns: e.cfg.DBMinConns,
	}, e.log)
	if err != nil {
		return err
	}
	e.pool = pool
	e.repos = postgres.New(pool)
	return nil
}

func (e *entorno) migrador() (*database.Migrator, error) {
	if e.cfg.Storage != config.StoragePostgres {
		return nil, errors.New("las migraciones requieren STORAGE=postgres")
	}
	return database.NewMigrator(e.cfg.DatabaseURL, e.log)
}

func (e *entorno) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
	_ = e.log.Sync()
}
