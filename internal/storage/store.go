// Package storage persists analyzed financial records.
package storage

import (
	"context"
	"errors"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("financial record not found")

// Store persists and retrieves analysis records.
type Store interface {
	Save(ctx context.Context, rec *models.FinancialRecord) error
	Get(ctx context.Context, id string) (*models.FinancialRecord, error)
	// List returns up to limit records, most recent upload first.
	List(ctx context.Context, limit int) ([]models.FinancialRecord, error)
}
