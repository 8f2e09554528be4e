package sqlite

import (
	"time"

	"accredparser/cmd/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the database at dbPath and migrates the full schema. Migration
// is idempotent, so repeated runs against the same file are safe.
func Init(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.OrganizationType{},
		&entity.EducationLevel{},
		&entity.EducationForm{},
		&entity.Organization{},
		&entity.Certificate{},
		&entity.Supplement{},
		&entity.EducationalProgram{},
		&entity.Decision{},
		&entity.IndividualEntrepreneur{},
	)
	if err != nil {
		return nil, err
	}

	// Single connection: the ingestion driver owns the session exclusively
	// for the whole run.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
