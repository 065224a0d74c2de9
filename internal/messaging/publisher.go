package messaging

import (
	"context"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// Publisher emits platform events to the message bus. Publishing is
// best-effort from the caller's point of view: state changes commit first and
// a failed publish never rolls them back.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// Publish emits one platform event
	Publish(ctx context.Context, event *domain.PlatformEvent) error
}
