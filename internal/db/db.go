package db

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/pkg/config"
	"github.com/postdeck/postdeck/pkg/logging"
)

// Backend identifies which persistence backend is active
type Backend string

const (
	// BackendRemote is the remote Postgres table store
	BackendRemote Backend = "postgres"
	// BackendLocal is the local SQLite file store
	BackendLocal Backend = "sqlite"
)

// zapWriter adapts zap.Logger to logger.Writer interface
type zapWriter struct {
	logger *zap.Logger
}

func (w *zapWriter) Printf(format string, args ...interface{}) {
	w.logger.Sugar().Infof(format, args...)
}

// DB wraps the GORM database connection. The backend is chosen once at
// startup: the remote store when a DSN is configured and reachable, the
// local file otherwise. Everything above this handle is backend-agnostic.
type DB struct {
	*gorm.DB
	Backend Backend
}

// New creates a new database connection, probing the remote backend first
func New(cfg *config.DatabaseConfig, logLevel string) (*DB, error) {
	gormLogger := newGormLogger(logLevel)
	log := logging.WithComponent("db")

	if cfg.RemoteDSN != "" {
		db, err := openRemote(cfg.RemoteDSN, gormLogger)
		if err == nil {
			log.Info("Remote database connection established")
			return &DB{DB: db, Backend: BackendRemote}, nil
		}
		if cfg.LocalPath == "" {
			return nil, fmt.Errorf("remote database unreachable and no local fallback configured: %w", err)
		}
		log.Warn("Remote database unreachable, falling back to local store", zap.Error(err))
	}

	db, err := gorm.Open(sqlite.Open(cfg.LocalPath), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	log.Info("Local database opened", zap.String("path", cfg.LocalPath))

	return &DB{DB: db, Backend: BackendLocal}, nil
}

func openRemote(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Probe: the remote backend is only selected when it answers
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func newGormLogger(logLevel string) logger.Interface {
	var gormLogLevel logger.LogLevel
	switch logLevel {
	case "DEBUG", "debug":
		gormLogLevel = logger.Info
	case "INFO", "info":
		gormLogLevel = logger.Warn
	case "WARN", "warn", "WARNING", "warning":
		gormLogLevel = logger.Error
	case "ERROR", "error":
		gormLogLevel = logger.Silent
	default:
		gormLogLevel = logger.Warn
	}

	writer := &zapWriter{logger: logging.GetLogger()}

	return logger.New(
		writer,
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Migrate creates or updates the schema for all record types
func (d *DB) Migrate() error {
	return d.DB.AutoMigrate(
		&models.ContentPost{},
		&models.Quote{},
		&models.NewsDecision{},
		&models.Idea{},
		&models.Settings{},
	)
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Health checks database health
func (d *DB) Health(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
