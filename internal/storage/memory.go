package storage

import (
	"context"
	"sync"

	"github.com/insightdelivered/financial-analytics/internal/models"
)

// MemoryStore is an in-process Store used in tests and when no MongoDB is
// configured. Records do not survive a restart.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]models.FinancialRecord
	ordered []string // ids in insertion order
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]models.FinancialRecord)}
}

func (s *MemoryStore) Save(_ context.Context, rec *models.FinancialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[rec.ID]; !exists {
		s.ordered = append(s.ordered, rec.ID)
	}
	s.byID[rec.ID] = *rec
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.FinancialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) List(_ context.Context, limit int) ([]models.FinancialRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := []models.FinancialRecord{}
	// Newest first, matching the Mongo implementation's sort.
	for i := len(s.ordered) - 1; i >= 0 && len(recs) < limit; i-- {
		recs = append(recs, s.byID[s.ordered[i]])
	}
	return recs, nil
}
