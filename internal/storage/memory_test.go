package storage

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

func sampleRecord(id string) *models.FinancialRecord {
	return &models.FinancialRecord{
		ID:         id,
		Filename:   "report.csv",
		UploadDate: time.Now().UTC(),
		Headers:    []string{"Date", "Revenus"},
		RawData:    []models.Row{{"Date": "2024-01", "Revenus": "100"}},
		DetectedColumns: models.DetectedColumns{
			"date":    "Date",
			"revenus": "Revenus",
		},
		KPIs: models.KPIReport{RevenusTotaux: 100},
	}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec := sampleRecord("abc-123")
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, "abc-123")
	require.NoError(t, err)
	assert.Equal(t, rec.Filename, got.Filename)
	assert.Equal(t, rec.KPIs, got.KPIs)
	assert.Equal(t, rec.DetectedColumns, got.DetectedColumns)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Save(ctx, sampleRecord(fmt.Sprintf("id-%d", i))))
	}

	recs, err := store.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "id-4", recs[0].ID)
	assert.Equal(t, "id-2", recs[2].ID)
}

func TestMemoryStoreListEmpty(t *testing.T) {
	store := NewMemoryStore()

	recs, err := store.List(context.Background(), 100)
	require.NoError(t, err)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestMemoryStoreIsolatesStoredCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	rec := sampleRecord("iso-1")
	require.NoError(t, store.Save(ctx, rec))
	rec.Filename = "mutated.csv"

	got, err := store.Get(ctx, "iso-1")
	require.NoError(t, err)
	assert.Equal(t, "report.csv", got.Filename)
}
