package driven

import (
	"context"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// RecordRepository persists the complete record set.
// Saves always write every collection; there are no partial updates.
type RecordRepository interface {
	// Load reads the persisted records.
	// A missing store yields empty records and no error.
	// Unreadable content yields a *domain.CorruptStateError.
	Load(ctx context.Context) (domain.Records, error)

	// Save replaces the persisted records with records.
	// On failure the previously persisted records remain intact.
	Save(ctx context.Context, records domain.Records) error

	// Location describes where records are persisted.
	Location() string
}
