package repository

import (
	"os"
	"path/filepath"
	"time"

	"kayan/internal/config"
	"kayan/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// dateLayout is the calendar-date format used by every DATE() comparison
const dateLayout = "2006-01-02"

// SQLiteRepository handles all persistence against the embedded database
type SQLiteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository opens (creating if necessary) the single-file SQLite
// database and migrates the schema
func NewSQLiteRepository(cfg *config.SQLiteConfig) *SQLiteRepository {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create database directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:  newGormLogger(),
		NowFunc: utcNow,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open SQLite database")
	}

	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Str("path", cfg.Path).Msg("SQLite database ready")

	return &SQLiteRepository{db: db}
}

// All timestamps are stored in UTC
func utcNow() time.Time {
	return time.Now().UTC()
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Visit{},
		&model.ContactMessage{},
		&model.Testimonial{},
		&model.EmailLog{},
	)
}

// GetDB returns the GORM DB instance
func (r *SQLiteRepository) GetDB() *gorm.DB {
	return r.db
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
