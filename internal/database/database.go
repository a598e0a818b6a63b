package database

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"notekeeper/internal/config"
	"notekeeper/internal/storage"
	"notekeeper/pkg/models"
)

// DB owns the database connection and the unit of work for every operation
// in this package. Construct it with Connect; one instance per process.
type DB struct {
	gorm     *gorm.DB
	name     string
	validate *validator.Validate
	cache    *storage.CategoryCache
}

func Connect(cfg *config.Config) (*DB, error) {
	log.Println("Connecting to database ...")

	gdb, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	// A single connection keeps the USE issued by CreateDatabase in effect
	// for every later statement.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database ping error: %w", err)
	}

	cache, err := storage.NewCategoryCache(storage.DefaultCacheSize)
	if err != nil {
		return nil, err
	}

	log.Println("Connected to database")

	return &DB{gorm: gdb, name: cfg.Name, validate: validator.New(), cache: cache}, nil
}

// CreateDatabase creates the configured database if it does not already
// exist and selects it as the session's active database.
func (db *DB) CreateDatabase() error {
	if err := db.gorm.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", db.name)).Error; err != nil {
		return err
	}
	return db.gorm.Exec(fmt.Sprintf("USE `%s`", db.name)).Error
}

// InitSchema creates the database and all declared tables. Existing tables
// are left untouched, so calling it again is safe.
func (db *DB) InitSchema() error {
	if err := db.CreateDatabase(); err != nil {
		return err
	}

	migrator := db.gorm.Migrator()
	for _, model := range []any{&models.Category{}, &models.Note{}} {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return err
		}
	}

	log.Println("Initialized DB")
	return nil
}

// DropDatabase drops the configured database if it exists. Irreversible.
func (db *DB) DropDatabase() error {
	if err := db.gorm.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", db.name)).Error; err != nil {
		return err
	}

	log.Println("Dropped DB")
	return nil
}

// Save validates and inserts a single record. Constraint violations come
// back as the sentinel errors declared in this package; a failed insert is
// rolled back by the server, so the session stays consistent.
func (db *DB) Save(record any) error {
	if err := db.validate.Struct(record); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, err)
	}

	result := db.gorm.Omit(clause.Associations).Create(record)
	err := classify(result.Error)

	if category, ok := record.(*models.Category); ok {
		if err != nil {
			// A failed save must not leave a stale entry behind.
			db.cache.Remove(category.Name)
		} else {
			db.cache.Add(category.Name, *category)
		}
	}

	return err
}
