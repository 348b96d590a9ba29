package gormstore

import (
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/domain/repositories"
)

// Config selects the database backend. Dialect is "sqlite3" for local file
// deployments or "postgres" for a hosted store.
type Config struct {
	Dialect string `yaml:"dialect"`
	DSN     string `yaml:"dsn"`
}

// Store owns the database connection and hands out repository views over it
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open connects to the configured database and migrates the schema
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	switch cfg.Dialect {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported database dialect: %q", cfg.Dialect)
	}

	db, err := gorm.Open(cfg.Dialect, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Dialect, err)
	}

	if err := db.AutoMigrate(&productRow{}, &salesRow{}, &scheduleRow{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	logger.Info().Str("dialect", cfg.Dialect).Msg("database connected")
	return &Store{db: db, log: logger}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Products returns the product catalog repository view
func (s *Store) Products() repositories.ProductRepository {
	return &productRepository{store: s}
}

// Sales returns the sales history repository view
func (s *Store) Sales() repositories.SalesRepository {
	return &salesRepository{store: s}
}

// Schedules returns the schedule repository view
func (s *Store) Schedules() repositories.ScheduleRepository {
	return &scheduleRepository{store: s}
}
