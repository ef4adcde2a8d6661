package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/safedrive/internal/core/domain"
	"github.com/custodia-labs/safedrive/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordRepository = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordRepository.
// Records are lost when the process exits.
type RecordStore struct {
	mu      sync.RWMutex
	records domain.Records
	saves   int
}

// NewRecordStore creates a new in-memory record store holding seed.
func NewRecordStore(seed domain.Records) *RecordStore {
	return &RecordStore{records: seed.Clone()}
}

// Load returns a copy of the held records.
func (s *RecordStore) Load(_ context.Context) (domain.Records, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records.Clone(), nil
}

// Save replaces the held records with a copy of records.
func (s *RecordStore) Save(ctx context.Context, records domain.Records) error {
	if err := ctx.Err(); err != nil {
		return domain.NewIOFailure("save", s.Location(), err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records.Clone()
	s.saves++
	return nil
}

// Saves returns how many times Save has succeeded.
func (s *RecordStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Location returns a marker for memory-only storage.
func (s *RecordStore) Location() string {
	return ":memory:"
}
