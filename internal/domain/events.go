package domain

import "time"

// PlatformEventType identifies the kind of a platform event
type PlatformEventType string

const (
	EventCertificateIssued  PlatformEventType = "certificate.issued"
	EventCertificateRevoked PlatformEventType = "certificate.revoked"
	EventLedgerEntryCreated PlatformEventType = "ledger.entry.created"
	EventWithdrawalUpdated  PlatformEventType = "withdrawal.updated"
	EventProposalResolved   PlatformEventType = "proposal.resolved"
)

// PlatformEvent is the normalized event published to NATS whenever the core
// records a state change other subsystems care about (notifications, search,
// analytics). The payload carries only identifiers; consumers read the
// authoritative state from the API.
type PlatformEvent struct {
	EventID    string            `json:"event_id"` // ULID, sortable by emission time
	Type       PlatformEventType `json:"type"`
	CreatorID  string            `json:"creator_id,omitempty"`
	SubjectID  string            `json:"subject_id"` // certificate, entry, withdrawal, or proposal ID
	OccurredAt time.Time         `json:"occurred_at"`
}
