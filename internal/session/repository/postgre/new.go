package postgre

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"card-consumption-assistant/internal/session"
	"card-consumption-assistant/pkg/log"
)

type implStore struct {
	db *gorm.DB
	l  log.Logger
}

// New creates a PostgreSQL-backed history store over the message_store table.
func New(db *gorm.DB, l log.Logger) session.Store {
	if db == nil {
		panic("session/repository/postgre: db is required")
	}
	return &implStore{db: db, l: l}
}

// Migrate creates the message_store table when it is missing.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&messageRow{})
}

func (s *implStore) dsn(method string) string {
	return fmt.Sprintf("session/repository/postgre.%s", method)
}
