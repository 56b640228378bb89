package database

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikepea/abhyas/pkg/abhyas/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	appDir   = "abhyas"
	fileName = "abhyas.db"

	// MemoryPath opens a private in-memory database
	MemoryPath = ":memory:"
)

// ErrStorageUnavailable is returned when the database file, its directory or
// the connection cannot be created or opened.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Config controls how the database is opened
type Config struct {
	// Path of the SQLite file. Parent directories are created.
	Path string

	// Logger receives gorm's SQL trace. Nil silences it.
	Logger logger.Interface
}

// DefaultPath returns the database location inside the user's cache directory
func DefaultPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%w: cache directory not found: %v", ErrStorageUnavailable, err)
	}
	return filepath.Join(cacheDir, appDir, fileName), nil
}

// Connect opens the database, holds it to a single connection and makes sure
// the links table exists.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("%w: empty database path", ErrStorageUnavailable)
	}

	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create directory for %s: %v", ErrStorageUnavailable, cfg.Path, err)
		}
	}

	gormLogger := cfg.Logger
	if gormLogger == nil {
		gormLogger = logger.Discard
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, cfg.Path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	// One long-lived connection. In-memory databases also depend on this,
	// each new connection would see an empty database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrStorageUnavailable, cfg.Path, err)
	}

	if err := models.EnsureSchema(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: create schema in %s: %v", ErrStorageUnavailable, cfg.Path, err)
	}

	return db, nil
}

// Close releases the connection held by db
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
