package rest

import (
	"encoding/json"
	"time"

	"github.com/origin-platform/rights-ledger/internal/store/schema"
)

// Request bodies

type createContentRequest struct {
	// Title is the creator-supplied display title
	Title string `json:"title"`
	// Content is the submission payload, base64-encoded
	Content string `json:"content" binding:"required"`
}

type recordEventRequest struct {
	EventID     string `json:"event_id"`
	ContentID   string `json:"content_id"`
	CreatorID   string `json:"creator_id" binding:"required"`
	ChannelType string `json:"channel_type" binding:"required"`
	GrossAmount int64  `json:"gross_amount"`
	OccurredAt  string `json:"occurred_at"`
}

type revokeCertificateRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type createWithdrawalRequest struct {
	Amount int64  `json:"amount" binding:"required"`
	Method string `json:"method" binding:"required"`
}

type updateWithdrawalRequest struct {
	Status string `json:"status" binding:"required"`
}

type createProposalRequest struct {
	Category         string `json:"category" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Description      string `json:"description"`
	VotingPeriodDays int    `json:"voting_period_days"`
}

type castVoteRequest struct {
	Choice string `json:"choice" binding:"required"`
}

// Response bodies

type contentResponse struct {
	ContentID   string    `json:"content_id"`
	CreatorID   string    `json:"creator_id"`
	ContentHash string    `json:"content_hash"`
	MimeType    string    `json:"mime_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Title       string    `json:"title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toContentResponse(r *schema.ContentRecord) contentResponse {
	return contentResponse{
		ContentID:   r.ContentID,
		CreatorID:   r.CreatorID,
		ContentHash: r.ContentHash,
		MimeType:    r.MimeType,
		SizeBytes:   r.SizeBytes,
		Title:       r.Title,
		CreatedAt:   r.CreatedAt,
	}
}

type certificateResponse struct {
	CertificateID string          `json:"certificate_id"`
	ContentID     string          `json:"content_id"`
	CreatorID     string          `json:"creator_id"`
	ContentHash   string          `json:"content_hash"`
	IssuedAt      time.Time       `json:"issued_at"`
	ChainName     string          `json:"chain_name"`
	AnchorTxHash  string          `json:"anchor_tx_hash"`
	Attestation   json.RawMessage `json:"attestation,omitempty"`
	Status        string          `json:"status"`
	RevokedReason *string         `json:"revoked_reason,omitempty"`
	RevokedAt     *time.Time      `json:"revoked_at,omitempty"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

func toCertificateResponse(cert *schema.Certificate) certificateResponse {
	return certificateResponse{
		CertificateID: cert.CertificateID,
		ContentID:     cert.ContentID,
		CreatorID:     cert.CreatorID,
		ContentHash:   cert.ContentHash,
		IssuedAt:      cert.IssuedAt,
		ChainName:     cert.ChainName,
		AnchorTxHash:  cert.AnchorTxHash,
		Attestation:   json.RawMessage(cert.Attestation),
		Status:        string(cert.Status),
		RevokedReason: cert.RevokedReason,
		RevokedAt:     cert.RevokedAt,
		ExpiresAt:     cert.ExpiresAt,
	}
}

type verificationResponse struct {
	Result      string              `json:"result"`
	Certificate certificateResponse `json:"certificate"`
}

type ledgerEntryResponse struct {
	EntryID          string    `json:"entry_id"`
	EventID          string    `json:"event_id"`
	CreatorID        string    `json:"creator_id"`
	CreatorShare     int64     `json:"creator_share"`
	PlatformShare    int64     `json:"platform_share"`
	ThirdPartyShare  int64     `json:"third_party_share"`
	SplitRuleVersion int       `json:"split_rule_version"`
	SettlesAt        time.Time `json:"settles_at"`
	Settled          bool      `json:"settled"`
	CreatedAt        time.Time `json:"created_at"`
}

func toLedgerEntryResponse(e *schema.LedgerEntry) ledgerEntryResponse {
	return ledgerEntryResponse{
		EntryID:          e.EntryID,
		EventID:          e.EventID,
		CreatorID:        e.CreatorID,
		CreatorShare:     e.CreatorShare,
		PlatformShare:    e.PlatformShare,
		ThirdPartyShare:  e.ThirdPartyShare,
		SplitRuleVersion: e.SplitRuleVersion,
		SettlesAt:        e.SettlesAt,
		Settled:          e.Settled,
		CreatedAt:        e.CreatedAt,
	}
}

type balanceResponse struct {
	CreatorID      string `json:"creator_id"`
	PendingTotal   int64  `json:"pending_total"`
	AvailableTotal int64  `json:"available_total"`
}

type withdrawalResponse struct {
	WithdrawalID string     `json:"withdrawal_id"`
	CreatorID    string     `json:"creator_id"`
	Amount       int64      `json:"amount"`
	Method       string     `json:"method"`
	Status       string     `json:"status"`
	RequestedAt  time.Time  `json:"requested_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
}

func toWithdrawalResponse(w *schema.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		CreatorID:    w.CreatorID,
		Amount:       w.Amount,
		Method:       string(w.Method),
		Status:       string(w.Status),
		RequestedAt:  w.RequestedAt,
		ResolvedAt:   w.ResolvedAt,
	}
}

type proposalResponse struct {
	ProposalID          string     `json:"proposal_id"`
	CreatorID           string     `json:"creator_id"`
	Category            string     `json:"category"`
	Title               string     `json:"title"`
	Description         string     `json:"description,omitempty"`
	OpenedAt            time.Time  `json:"opened_at"`
	ClosesAt            time.Time  `json:"closes_at"`
	YesWeight           int64      `json:"yes_weight"`
	NoWeight            int64      `json:"no_weight"`
	TotalEligibleWeight int64      `json:"total_eligible_weight"`
	Status              string     `json:"status"`
	VetoedBy            *string    `json:"vetoed_by,omitempty"`
	ResolvedAt          *time.Time `json:"resolved_at,omitempty"`
}

func toProposalResponse(p *schema.Proposal) proposalResponse {
	return proposalResponse{
		ProposalID:          p.ProposalID,
		CreatorID:           p.CreatorID,
		Category:            string(p.Category),
		Title:               p.Title,
		Description:         p.Description,
		OpenedAt:            p.OpenedAt,
		ClosesAt:            p.ClosesAt,
		YesWeight:           p.YesWeight,
		NoWeight:            p.NoWeight,
		TotalEligibleWeight: p.TotalEligibleWeight,
		Status:              string(p.Status),
		VetoedBy:            p.VetoedBy,
		ResolvedAt:          p.ResolvedAt,
	}
}

type voteResponse struct {
	VoterID string    `json:"voter_id"`
	Choice  string    `json:"choice"`
	Weight  int64     `json:"weight"`
	CastAt  time.Time `json:"cast_at"`
}

func toVoteResponse(v *schema.VoteRecord) voteResponse {
	return voteResponse{
		VoterID: v.VoterID,
		Choice:  string(v.Choice),
		Weight:  v.Weight,
		CastAt:  v.CastAt,
	}
}
