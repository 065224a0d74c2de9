package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// Certificate represents the certificates table - the immutable binding of a
// fingerprint, creator identity, and trusted timestamp, anchored to an
// external ledger. Immutable once issued except the one-way valid→revoked
// status transition.
type Certificate struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CertificateID is the public certificate identifier (ULID)
	CertificateID string `gorm:"column:certificate_id;not null;uniqueIndex;type:varchar(26)"`
	// ContentID references the fingerprinted content; one valid certificate per content
	ContentID string `gorm:"column:content_id;not null;uniqueIndex;type:text"`
	// CreatorID is the certified creator identity
	CreatorID string `gorm:"column:creator_id;not null;type:text;index"`
	// ContentHash is the hex digest the certificate attests to
	ContentHash string `gorm:"column:content_hash;not null;type:text"`
	// IssuedAt is the trusted timestamp obtained from the time-attestation source
	IssuedAt time.Time `gorm:"column:issued_at;not null;type:timestamptz"`
	// ChainName identifies the external ledger the certificate is anchored to
	ChainName string `gorm:"column:chain_name;not null;type:text"`
	// AnchorTxHash is the transaction reference of the anchor record
	AnchorTxHash string `gorm:"column:anchor_tx_hash;not null;type:text"`
	// Attestation is the raw attestation payload from the timestamp authority
	Attestation datatypes.JSON `gorm:"column:attestation;type:jsonb"`
	// Status is valid or revoked; revocation is terminal
	Status domain.CertificateStatus `gorm:"column:status;not null;type:text;default:'valid'"`
	// RevokedReason records why the certificate was revoked, if it was
	RevokedReason *string `gorm:"column:revoked_reason;type:text"`
	// RevokedAt is the timestamp of revocation, if any
	RevokedAt *time.Time `gorm:"column:revoked_at;type:timestamptz"`
	// ExpiresAt is the end of the certificate's validity window
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this row was persisted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Certificate model
func (Certificate) TableName() string {
	return "certificates"
}
