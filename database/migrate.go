package database

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator aplica las migraciones embebidas con golang-migrate
type Migrator struct {
	migrate *migrate.Migrate
	logger  *zap.Logger
}

// migrateURL cambia el esquema postgres:// por el del driver pgx5://
func migrateURL(databaseURL string) string {
	for _, prefijo := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(databaseURL, prefijo) {
			return "pgx5://" + strings.TrimPrefix(databaseURL, prefijo)
		}
	}
	return databaseURL
}

// NewMigrator prepara golang-migrate sobre DATABASE_URL
func NewMigrator(databaseURL string, logger *zap.Logger) (*Migrator, error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones embebidas: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(databaseURL))
	if err != nil {
		return nil, fmt.Errorf("crear instancia de migrate: %w", err)
	}
	return &Migrator{migrate: m, logger: logger}, nil
}

// Up aplica todas las migraciones pendientes
func (m *Migrator) Up() error {
	m.logger.Info("Aplicando migraciones")
	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No hay migraciones pendientes")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migración up: %w", err)
	}
	return m.logVersion()
}

// Down revierte todas las migraciones
func (m *Migrator) Down() error {
	m.logger.Info("Revirtiendo migraciones")
	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No hay migraciones que revertir")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migración down: %w", err)
	}
	return nil
}

// Version devuelve la versión aplicada; 0 si la base está vacía
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("leer versión de migraciones: %w", err)
	}
	return version, dirty, nil
}

// Close libera la fuente y la conexión de migrate
func (m *Migrator) Close() error {
	srcErr, dbErr := m.migrate.Close()
	return errors.Join(srcErr, dbErr)
}

func (m *Migrator) logVersion() error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	m.logger.Info("Migraciones completadas", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}
