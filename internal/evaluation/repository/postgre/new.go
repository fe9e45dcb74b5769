package postgre

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"card-consumption-assistant/internal/evaluation/repository"
	"card-consumption-assistant/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed Repository over the evaluate table.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("evaluation/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Migrate creates the evaluate table when it is missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&evaluateRow{})
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("evaluation/repository/postgre.%s", method)
}
