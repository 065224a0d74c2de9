package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Migrate creates or updates all ledger tables and seeds the initial split
// rule versions for channels that have none yet
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&schema.ContentRecord{},
		&schema.Certificate{},
		&schema.MonetizationEvent{},
		&schema.LedgerEntry{},
		&schema.CreatorBalance{},
		&schema.Withdrawal{},
		&schema.SplitRule{},
		&schema.Proposal{},
		&schema.VoteRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return seedSplitRules(db)
}

// seedSplitRules inserts version 1 of the split policy for every channel.
// Existing (channel, version) rows are left untouched so re-running migration
// never rewrites enacted policy.
func seedSplitRules(db *gorm.DB) error {
	percentage := func(channel domain.ChannelType, creatorBps, platformBps, thirdPartyBps int64, thirdPartyID string) schema.SplitRule {
		return schema.SplitRule{
			ChannelType:         channel,
			Version:             1,
			FeeModel:            domain.FeeModelPercentage,
			CreatorBps:          creatorBps,
			PlatformBps:         platformBps,
			ThirdPartyBps:       thirdPartyBps,
			ThirdPartyCreatorID: thirdPartyID,
			Active:              true,
		}
	}

	// Flat fees land on the fee-collector balance so they stay auditable
	// the same way percentage third-party shares are
	flatFee := func(channel domain.ChannelType, fee int64) schema.SplitRule {
		return schema.SplitRule{
			ChannelType:         channel,
			Version:             1,
			FeeModel:            domain.FeeModelFlatFee,
			FlatFee:             fee,
			ThirdPartyCreatorID: domain.FeeCollectorCreatorID,
			Active:              true,
		}
	}

	rules := []schema.SplitRule{
		percentage(domain.ChannelLicensing, 9500, 500, 0, ""),
		percentage(domain.ChannelTipping, 9500, 500, 0, ""),
		percentage(domain.ChannelPaidContent, 9500, 500, 0, ""),
		percentage(domain.ChannelServiceShop, 9500, 500, 0, ""),
		percentage(domain.ChannelDigitalCollectible, 9500, 500, 0, ""),
		percentage(domain.ChannelBrandCollab, 9000, 1000, 0, ""),
		flatFee(domain.ChannelPaidCommunity, 100),
		flatFee(domain.ChannelSubscription, 100),
		percentage(domain.ChannelPlatformMembershipFee, 0, 7000, 3000, domain.PoolFundCreatorID),
	}

	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "channel_type"}, {Name: "version"}},
		DoNothing: true,
	}).Create(&rules).Error
	if err != nil {
		return fmt.Errorf("failed to seed split rules: %w", err)
	}

	return nil
}

// CreateContentRecord persists a fingerprinted content record. Fingerprinting
// is deterministic, so re-registering identical content hits the content_id
// unique constraint and the existing record is returned instead.
func (s *pgStore) CreateContentRecord(ctx context.Context, record *schema.ContentRecord) (*schema.ContentRecord, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}},
		DoNothing: true,
	}).Create(record).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create content record: %w", err)
	}

	// ID 0 means the record already existed, fetch it
	if record.ID == 0 {
		var existing schema.ContentRecord
		if err := s.db.WithContext(ctx).Where("content_id = ?", record.ContentID).First(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to get existing content record: %w", err)
		}
		return &existing, nil
	}

	return record, nil
}

// GetContentRecordByContentID retrieves a content record by its content-addressed ID
func (s *pgStore) GetContentRecordByContentID(ctx context.Context, contentID string) (*schema.ContentRecord, error) {
	var record schema.ContentRecord
	err := s.db.WithContext(ctx).Where("content_id = ?", contentID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content record: %w", err)
	}
	return &record, nil
}

// CreateCertificate persists a certificate. The content_id unique constraint
// guarantees at most one certificate per content, ever: a revoked certificate
// still blocks re-issuance.
func (s *pgStore) CreateCertificate(ctx context.Context, cert *schema.Certificate) error {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "content_id"}},
		DoNothing: true,
	}).Create(cert)
	if result.Error != nil {
		return fmt.Errorf("failed to create certificate: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDuplicateCertificate
	}
	return nil
}

// GetCertificateByContentID retrieves a certificate by content ID
func (s *pgStore) GetCertificateByContentID(ctx context.Context, contentID string) (*schema.Certificate, error) {
	var cert schema.Certificate
	err := s.db.WithContext(ctx).Where("content_id = ?", contentID).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &cert, nil
}

// GetCertificateByCertificateID retrieves a certificate by its public ID
func (s *pgStore) GetCertificateByCertificateID(ctx context.Context, certificateID string) (*schema.Certificate, error) {
	var cert schema.Certificate
	err := s.db.WithContext(ctx).Where("certificate_id = ?", certificateID).First(&cert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &cert, nil
}

// RevokeCertificate marks a certificate revoked with the given reason
func (s *pgStore) RevokeCertificate(ctx context.Context, certificateID string, reason string, revokedAt time.Time) (*schema.Certificate, error) {
	var cert schema.Certificate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("certificate_id = ?", certificateID).
			First(&cert).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("failed to get certificate: %w", err)
		}

		if cert.Status == domain.CertificateStatusRevoked {
			return domain.ErrAlreadyRevoked
		}

		cert.Status = domain.CertificateStatusRevoked
		cert.RevokedReason = &reason
		cert.RevokedAt = &revokedAt

		if err := tx.Model(&schema.Certificate{}).
			Where("certificate_id = ?", certificateID).
			Updates(map[string]interface{}{
				"status":         cert.Status,
				"revoked_reason": cert.RevokedReason,
				"revoked_at":     cert.RevokedAt,
			}).Error; err != nil {
			return fmt.Errorf("failed to revoke certificate: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &cert, nil
}
