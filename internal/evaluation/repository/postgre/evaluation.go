package postgre

import (
	"context"
	"time"

	"gorm.io/gorm"

	"card-consumption-assistant/internal/evaluation"
	"card-consumption-assistant/internal/evaluation/repository"
)

// evaluateRow keeps the column names of the existing evaluate table.
type evaluateRow struct {
	TxnSeq     string    `gorm:"column:TXNSEQ;primaryKey"`
	SessionID  string    `gorm:"column:SESSIONI_ID;primaryKey"`
	CustomerID string    `gorm:"column:CUSTOMER_ID;primaryKey"`
	Evaluate   bool      `gorm:"column:EVALUATE"`
	Time       time.Time `gorm:"column:TIME"`
}

func (evaluateRow) TableName() string { return "evaluate" }

func toRow(e evaluation.Evaluation) evaluateRow {
	return evaluateRow{
		TxnSeq:     e.TxnSeq,
		SessionID:  e.SessionID,
		CustomerID: e.CustomerID,
		Evaluate:   e.Positive,
		Time:       e.Time,
	}
}

// CreateEvaluation inserts one row inside a transaction.
func (r *implRepository) CreateEvaluation(ctx context.Context, e evaluation.Evaluation) error {
	row := toRow(e)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: txnseq=%s: %v", r.dsn("CreateEvaluation"), e.TxnSeq, err)
		return repository.ErrFailedToInsert
	}
	return nil
}
