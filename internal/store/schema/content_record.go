package schema

import (
	"time"

	"github.com/origin-platform/rights-ledger/internal/domain"
)

// ContentRecord represents the content_records table - one row per fingerprinted
// submission. Records are immutable after creation; revisions supersede, never edit.
type ContentRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContentID is the content-addressed identifier derived from the fingerprint (oc1:<hex>)
	ContentID string `gorm:"column:content_id;not null;uniqueIndex;type:text"`
	// CreatorID is the identity of the submitting creator
	CreatorID string `gorm:"column:creator_id;not null;type:text;index"`
	// ContentHash is the hex SHA-256 digest of the normalized content bytes
	ContentHash string `gorm:"column:content_hash;not null;type:text"`
	// MimeType is the sniffed media type of the submitted bytes
	MimeType string `gorm:"column:mime_type;not null;type:text"`
	// SizeBytes is the length of the normalized content
	SizeBytes int64 `gorm:"column:size_bytes;not null"`
	// Title is the creator-supplied display title
	Title string `gorm:"column:title;type:text"`
	// CreatedAt is the timestamp when this record was fingerprinted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ContentRecord model
func (ContentRecord) TableName() string {
	return "content_records"
}

// OwnedBy reports whether the record belongs to the given creator
func (r *ContentRecord) OwnedBy(creatorID string) bool {
	return r.CreatorID == creatorID
}

// CID returns the typed content identifier
func (r *ContentRecord) CID() domain.ContentID {
	return domain.ContentID(r.ContentID)
}
