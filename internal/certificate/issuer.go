package certificate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/logger"
	"github.com/origin-platform/rights-ledger/internal/messaging"
	"github.com/origin-platform/rights-ledger/internal/store"
	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// Issuer binds content fingerprints to creator identities through trusted
// timestamps and external ledger anchors. Issuance is all-or-nothing: a
// certificate is persisted only after both collaborators answered.
type Issuer struct {
	store            store.Store
	clock            adapter.Clock
	timestamper      adapter.TimestampAuthority
	anchor           adapter.AnchorClient
	publisher        messaging.Publisher
	validity         time.Duration
	collaboratorWait time.Duration
}

// NewIssuer creates a certificate issuer. validity is the certificate
// lifetime from issuance; collaboratorWait bounds each external call.
func NewIssuer(
	s store.Store,
	clock adapter.Clock,
	timestamper adapter.TimestampAuthority,
	anchor adapter.AnchorClient,
	publisher messaging.Publisher,
	validity time.Duration,
	collaboratorWait time.Duration,
) *Issuer {
	return &Issuer{
		store:            s,
		clock:            clock,
		timestamper:      timestamper,
		anchor:           anchor,
		publisher:        publisher,
		validity:         validity,
		collaboratorWait: collaboratorWait,
	}
}

// Issue creates a certificate for the given content on behalf of its owner.
// The duplicate precheck keeps collaborator calls off the failure path; the
// unique constraint on content_id closes the race window.
func (i *Issuer) Issue(ctx context.Context, contentID string, creatorID string) (*schema.Certificate, error) {
	record, err := i.store.GetContentRecordByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: content %s", domain.ErrNotFound, contentID)
	}
	if !record.OwnedBy(creatorID) {
		return nil, fmt.Errorf("%w: %s does not own %s", domain.ErrUnauthorizedCreator, creatorID, contentID)
	}

	existing, err := i.store.GetCertificateByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateCertificate, existing.CertificateID)
	}

	attestation, err := i.attestTime(ctx, record.ContentHash)
	if err != nil {
		return nil, err
	}

	anchorRef, err := i.anchorHash(ctx, record.ContentHash)
	if err != nil {
		return nil, err
	}

	attestationJSON, err := json.Marshal(attestation)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attestation: %w", err)
	}

	issuedAt := attestation.Timestamp
	cert := &schema.Certificate{
		CertificateID: ulid.Make().String(),
		ContentID:     contentID,
		CreatorID:     creatorID,
		ContentHash:   record.ContentHash,
		IssuedAt:      issuedAt,
		ChainName:     anchorRef.ChainName,
		AnchorTxHash:  anchorRef.TxHash,
		Attestation:   datatypes.JSON(attestationJSON),
		Status:        domain.CertificateStatusValid,
		ExpiresAt:     issuedAt.Add(i.validity),
		CreatedAt:     i.clock.Now(),
	}

	if err := i.store.CreateCertificate(ctx, cert); err != nil {
		return nil, err
	}

	i.publish(ctx, domain.EventCertificateIssued, cert)
	return cert, nil
}

// Revoke transitions a certificate valid to revoked, once
func (i *Issuer) Revoke(ctx context.Context, certificateID string, reason string) (*schema.Certificate, error) {
	cert, err := i.store.RevokeCertificate(ctx, certificateID, reason, i.clock.Now())
	if err != nil {
		return nil, err
	}

	i.publish(ctx, domain.EventCertificateRevoked, cert)
	return cert, nil
}

// Verify checks a certificate against the clock. Revocation dominates
// expiry: a revoked certificate reports revoked even past its expiry date.
func (i *Issuer) Verify(ctx context.Context, certificateID string) (domain.VerificationResult, *schema.Certificate, error) {
	cert, err := i.store.GetCertificateByCertificateID(ctx, certificateID)
	if err != nil {
		return "", nil, err
	}
	if cert == nil {
		return "", nil, fmt.Errorf("%w: certificate %s", domain.ErrNotFound, certificateID)
	}

	switch {
	case cert.Status == domain.CertificateStatusRevoked:
		return domain.VerificationRevoked, cert, nil
	case i.clock.Now().After(cert.ExpiresAt):
		return domain.VerificationExpired, cert, nil
	default:
		return domain.VerificationValid, cert, nil
	}
}

// GetByCertificateID retrieves a certificate by its public ID
func (i *Issuer) GetByCertificateID(ctx context.Context, certificateID string) (*schema.Certificate, error) {
	cert, err := i.store.GetCertificateByCertificateID(ctx, certificateID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, fmt.Errorf("%w: certificate %s", domain.ErrNotFound, certificateID)
	}
	return cert, nil
}

// GetByContentID retrieves the certificate for a content ID
func (i *Issuer) GetByContentID(ctx context.Context, contentID string) (*schema.Certificate, error) {
	cert, err := i.store.GetCertificateByContentID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if cert == nil {
		return nil, fmt.Errorf("%w: no certificate for %s", domain.ErrNotFound, contentID)
	}
	return cert, nil
}

// attestTime asks the timestamp authority under the bounded wait. Timeouts
// map to ErrAnchorTimeout so callers can distinguish retryable slowness from
// validation failures.
func (i *Issuer) attestTime(ctx context.Context, digest string) (*domain.Attestation, error) {
	callCtx, cancel := context.WithTimeout(ctx, i.collaboratorWait)
	defer cancel()

	attestation, err := i.timestamper.AttestTime(callCtx, digest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: timestamp authority: %v", domain.ErrAnchorTimeout, err)
		}
		return nil, fmt.Errorf("timestamp attestation failed: %w", err)
	}
	return attestation, nil
}

func (i *Issuer) anchorHash(ctx context.Context, digest string) (*domain.AnchorRef, error) {
	callCtx, cancel := context.WithTimeout(ctx, i.collaboratorWait)
	defer cancel()

	anchorRef, err := i.anchor.Anchor(callCtx, digest)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: anchor client: %v", domain.ErrAnchorTimeout, err)
		}
		return nil, fmt.Errorf("ledger anchoring failed: %w", err)
	}
	return anchorRef, nil
}

func (i *Issuer) publish(ctx context.Context, eventType domain.PlatformEventType, cert *schema.Certificate) {
	if i.publisher == nil {
		return
	}
	err := i.publisher.Publish(ctx, &domain.PlatformEvent{
		EventID:    ulid.Make().String(),
		Type:       eventType,
		CreatorID:  cert.CreatorID,
		SubjectID:  cert.CertificateID,
		OccurredAt: i.clock.Now(),
	})
	if err != nil {
		logger.WarnCtx(ctx, "failed to publish certificate event",
			zap.String("certificate_id", cert.CertificateID),
			zap.String("type", string(eventType)),
			zap.Error(err))
	}
}
