package db

import (
	"regexp"
	"strings"
	"time"

	"github.com/modelday/modelday/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// Pool fallbacks when the config leaves them unset. The confirm saga issues
// up to five statements per request, so the open ceiling stays well above the
// expected request concurrency.
const (
	defaultMaxOpen = 20
	defaultMaxIdle = 10
)

var sslmodeRegex = regexp.MustCompile(`(?i)\bsslmode\s*=\s*\w+`)

// normalizeDSN forces sslmode=require when TLS is enabled, rewriting an
// existing sslmode parameter or appending one.
func normalizeDSN(dsn string, enableTLS bool) string {
	if !enableTLS {
		return dsn
	}
	if sslmodeRegex.MatchString(dsn) {
		return sslmodeRegex.ReplaceAllString(dsn, "sslmode=require")
	}
	if !strings.HasSuffix(dsn, " ") {
		dsn += " "
	}
	return dsn + "sslmode=require"
}

func New(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(normalizeDSN(cfg.Database.DSN, cfg.Database.EnableTLS)), gcfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxOpen := cfg.Database.MaxOpen
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpen
	}
	maxIdle := cfg.Database.MaxIdle
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)
	return db, nil
}

// RegisterOpenTelemetryPlugin registers the OpenTelemetry plugin for GORM.
// Call after telemetry.SetupTracing() so the global tracer provider is set.
func RegisterOpenTelemetryPlugin(db *gorm.DB) error {
	return db.Use(tracing.NewPlugin())
}
