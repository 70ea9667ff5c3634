// Package config carga la configuración desde .env y variables de entorno.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Motores de almacenamiento y de PDF soportados
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	PDFEngineFPDF     = "fpdf"
	PDFEngineChromedp = "chromedp"
)

type Config struct {
	Port            string        `mapstructure:"PORT"`
	Environment     string        `mapstructure:"ENVIRONMENT"`
	DatabaseURL     string        `mapstructure:"DATABASE_URL"`
	Storage         string        `mapstructure:"STORAGE"`
	DBMaxConns      int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32         `mapstructure:"DB_MIN_CONNS"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	LogOutput       string        `mapstructure:"LOG_OUTPUT"`
	CORSOrigins     string        `mapstructure:"CORS_ORIGINS"`
	AuthEnabled     bool          `mapstructure:"AUTH_ENABLED"`
	JWTSecret       string        `mapstructure:"JWT_SECRET"`
	JWTExpiration   time.Duration `mapstructure:"JWT_EXPIRATION"`
	RateLimitMax    int           `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	RedisURL        string        `mapstructure:"REDIS_URL"`
	PDFEngine       string        `mapstructure:"PDF_ENGINE"`
	ChromeURL       string        `mapstructure:"CHROME_URL"`
	MigrateOnStart  bool          `mapstructure:"MIGRATE_ON_START"`
}

var claves = []string{
	"PORT", "ENVIRONMENT", "DATABASE_URL", "STORAGE", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "CORS_ORIGINS", "AUTH_ENABLED", "JWT_SECRET",
	"JWT_EXPIRATION", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "REDIS_URL", "PDF_ENGINE",
	"CHROME_URL", "MIGRATE_ON_START",
}

// Load lee .env (si existe) y luego el entorno, con valores por defecto
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Advertencia: No se pudo cargar el archivo .env")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("STORAGE", StoragePostgres)
	v.SetDefault("DB_MAX_CONNS", 30)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("RATE_LIMIT_MAX", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("PDF_ENGINE", PDFEngineFPDF)
	v.SetDefault("MIGRATE_ON_START", false)

	for _, k := range claves {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("enlazar %s: %w", k, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("leer configuración: %w", err)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
		if cfg.IsProduction() {
			cfg.LogFormat = "json"
		}
	}
	cfg.Storage = strings.ToLower(cfg.Storage)
	cfg.PDFEngine = strings.ToLower(cfg.PDFEngine)
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rechaza combinaciones con las que el servidor no puede arrancar
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL es obligatorio con STORAGE=postgres"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("STORAGE desconocido: %q", c.Storage))
	}
	if c.AuthEnabled && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET es obligatorio con AUTH_ENABLED=true"))
	}
	if c.PDFEngine != PDFEngineFPDF && c.PDFEngine != PDFEngineChromedp {
		errs = append(errs, fmt.Errorf("PDF_ENGINE desconocido: %q", c.PDFEngine))
	}
	if c.DBMinConns > c.DBMaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS (%d) no puede superar DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns))
	}
	return errors.Join(errs...)
}
