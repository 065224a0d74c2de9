package fingerprint

import (
	"context"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/store"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// Registrar fingerprints submissions and persists the resulting content
// records. Registration is idempotent: identical content maps onto the same
// content ID and the original record is returned.
type Registrar struct {
	fingerprinter *Fingerprinter
	store         store.Store
	clock         adapter.Clock
}

// NewRegistrar creates a content registrar
func NewRegistrar(fingerprinter *Fingerprinter, s store.Store, clock adapter.Clock) *Registrar {
	return &Registrar{
		fingerprinter: fingerprinter,
		store:         s,
		clock:         clock,
	}
}

// Register fingerprints the submission and stores its content record
func (r *Registrar) Register(ctx context.Context, creatorID string, title string, data []byte) (*schema.ContentRecord, error) {
	result, err := r.fingerprinter.Fingerprint(data)
	if err != nil {
		return nil, err
	}

	record := &schema.ContentRecord{
		ContentID:   string(result.ContentID),
		CreatorID:   creatorID,
		ContentHash: result.Digest,
		MimeType:    result.MimeType,
		SizeBytes:   result.NormalizedSize,
		Title:       title,
		CreatedAt:   r.clock.Now(),
	}

	return r.store.CreateContentRecord(ctx, record)
}

// Lookup retrieves a content record by its content-addressed ID
func (r *Registrar) Lookup(ctx context.Context, contentID string) (*schema.ContentRecord, error) {
	return r.store.GetContentRecordByContentID(ctx, contentID)
}
