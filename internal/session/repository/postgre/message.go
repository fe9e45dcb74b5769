package postgre

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"card-consumption-assistant/internal/model"
	"card-consumption-assistant/internal/session"
)

type messageRow struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement"`
	SessionID string         `gorm:"column:session_id;type:text;not null;index"`
	Message   datatypes.JSON `gorm:"column:message;type:jsonb;not null"`
}

func (messageRow) TableName() string { return "message_store" }

// Append inserts the turns in one statement, so their ids follow call order.
func (s *implStore) Append(ctx context.Context, sessionID string, turns ...model.Turn) error {
	if sessionID == "" {
		return session.ErrEmptySessionID
	}
	if len(turns) == 0 {
		return nil
	}

	rows := make([]messageRow, len(turns))
	for i, t := range turns {
		raw, err := session.Encode(t)
		if err != nil {
			return err
		}
		rows[i] = messageRow{SessionID: sessionID, Message: datatypes.JSON(raw)}
	}

	if err := s.db.WithContext(ctx).Create(&rows).Error; err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Append"), err)
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

func (s *implStore) Read(ctx context.Context, sessionID string) ([]model.Turn, error) {
	if sessionID == "" {
		return nil, session.ErrEmptySessionID
	}

	var rows []messageRow
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.dsn("Read"), err)
		return nil, fmt.Errorf("read history: %w", err)
	}

	turns := make([]model.Turn, 0, len(rows))
	for _, row := range rows {
		t, err := session.Decode(row.Message)
		if err != nil {
			s.l.Warnf(ctx, "%s: skipping row %d: %v", s.dsn("Read"), row.ID, err)
			continue
		}
		turns = append(turns, t)
	}
	return turns, nil
}
