package database

import (
	"log"
	"os"
	"time"

	"github.com/Nyagwenchar/bmsafaris/config"
	"github.com/Nyagwenchar/bmsafaris/models"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func newGormLogger(debug bool) gormLogger.Interface {
	level := gormLogger.Warn
	if debug {
		level = gormLogger.Info
	}
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// Connect opens the PostgreSQL store and runs migrations. It exits the
// process on failure since nothing can be served without the database.
func Connect(cfg *config.Config) *gorm.DB {
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{Logger: newGormLogger(cfg.Debug)})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		log.Fatal("Failed to use otelgorm: ", err)
	}

	return db
}

// Migrate is shared with the test suite, which runs it against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Tour{}, &models.TourImage{}, &models.Review{}, &models.User{})
}
