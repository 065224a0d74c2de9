package rest

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/origin-platform/rights-ledger/internal/api/middleware"
	"github.com/origin-platform/rights-ledger/internal/certificate"
	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/fingerprint"
	"github.com/origin-platform/rights-ledger/internal/governance"
	"github.com/origin-platform/rights-ledger/internal/payout"
	"github.com/origin-platform/rights-ledger/internal/revenue"
)

const defaultVotingPeriodDays = 7

// Handler holds the core services behind the REST surface
type Handler struct {
	registrar *fingerprint.Registrar
	issuer    *certificate.Issuer
	engine    *revenue.Engine
	ledger    *payout.Ledger
	tally     *governance.Tally
}

// NewHandler creates a REST handler over the core services
func NewHandler(
	registrar *fingerprint.Registrar,
	issuer *certificate.Issuer,
	engine *revenue.Engine,
	ledger *payout.Ledger,
	tally *governance.Tally,
) *Handler {
	return &Handler{
		registrar: registrar,
		issuer:    issuer,
		engine:    engine,
		ledger:    ledger,
		tally:     tally,
	}
}

// callerIdentity returns the authenticated creator identity. Service calls
// authenticated by API key have no subject and are rejected on creator-scoped
// endpoints.
func callerIdentity(c *gin.Context) (string, bool) {
	subject := middleware.AuthSubject(c)
	if subject == "" {
		respondWithError(c, http.StatusForbidden, "no_subject", "Endpoint requires a creator identity")
		return "", false
	}
	return subject, true
}

// creatorScoped checks that the caller may act on the given creator's
// resources: either a service (API key) or the creator themselves.
func creatorScoped(c *gin.Context, creatorID string) bool {
	if c.GetString(middleware.AuthTypeKey) == "apikey" {
		return true
	}
	if middleware.AuthSubject(c) == creatorID {
		return true
	}
	respondWithError(c, http.StatusForbidden, "forbidden", "Not allowed to access this creator's resources")
	return false
}

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		return 50
	}
	return limit
}

// CreateContent fingerprints a submission and registers its content record.
// Identical content registers onto the same record, so resubmission is safe.
func (h *Handler) CreateContent(c *gin.Context) {
	creatorID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req createContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		respondBadRequest(c, "Content must be base64-encoded")
		return
	}

	record, err := h.registrar.Register(c.Request.Context(), creatorID, req.Title, data)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toContentResponse(record))
}

// GetContent retrieves a content record by its content-addressed ID
func (h *Handler) GetContent(c *gin.Context) {
	contentID := c.Param("content_id")

	record, err := h.registrar.Lookup(c.Request.Context(), contentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if record == nil {
		respondWithError(c, http.StatusNotFound, "not_found", "Content not found")
		return
	}

	c.JSON(http.StatusOK, toContentResponse(record))
}

// IssueCertificate issues a copyright certificate for content the caller owns
func (h *Handler) IssueCertificate(c *gin.Context) {
	creatorID, ok := callerIdentity(c)
	if !ok {
		return
	}

	cert, err := h.issuer.Issue(c.Request.Context(), c.Param("content_id"), creatorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toCertificateResponse(cert))
}

// GetContentCertificate retrieves the certificate issued for a content ID
func (h *Handler) GetContentCertificate(c *gin.Context) {
	cert, err := h.issuer.GetByContentID(c.Request.Context(), c.Param("content_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCertificateResponse(cert))
}

// GetCertificate retrieves a certificate by its public ID
func (h *Handler) GetCertificate(c *gin.Context) {
	cert, err := h.issuer.GetByCertificateID(c.Request.Context(), c.Param("certificate_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCertificateResponse(cert))
}

// RevokeCertificate revokes a certificate. Only the certified creator may
// revoke; revocation is terminal.
func (h *Handler) RevokeCertificate(c *gin.Context) {
	creatorID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req revokeCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Revocation reason is required")
		return
	}

	certificateID := c.Param("certificate_id")
	cert, err := h.issuer.GetByCertificateID(c.Request.Context(), certificateID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if cert.CreatorID != creatorID {
		respondWithError(c, http.StatusForbidden, "unauthorized_creator", "Only the certified creator can revoke")
		return
	}

	revoked, err := h.issuer.Revoke(c.Request.Context(), certificateID, req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCertificateResponse(revoked))
}

// VerifyCertificate reports whether a certificate is valid, revoked, or expired
func (h *Handler) VerifyCertificate(c *gin.Context) {
	result, cert, err := h.issuer.Verify(c.Request.Context(), c.Param("certificate_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, verificationResponse{
		Result:      string(result),
		Certificate: toCertificateResponse(cert),
	})
}

// RecordRevenueEvent ingests a monetization event from an upstream channel.
// Service-to-service only; re-sending an event ID returns the original entry.
func (h *Handler) RecordRevenueEvent(c *gin.Context) {
	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := revenue.RecordEventInput{
		EventID:     req.EventID,
		ContentID:   req.ContentID,
		CreatorID:   req.CreatorID,
		ChannelType: domain.ChannelType(req.ChannelType),
		GrossAmount: req.GrossAmount,
	}
	if req.OccurredAt != "" {
		occurredAt, err := time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			respondBadRequest(c, "occurred_at must be RFC 3339")
			return
		}
		input.OccurredAt = occurredAt
	}

	entry, err := h.engine.RecordEvent(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toLedgerEntryResponse(entry))
}

// GetBalance returns a creator's pending and available totals
func (h *Handler) GetBalance(c *gin.Context) {
	creatorID := c.Param("creator_id")
	if !creatorScoped(c, creatorID) {
		return
	}

	balance, err := h.ledger.Balance(c.Request.Context(), creatorID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balanceResponse{
		CreatorID:      balance.CreatorID,
		PendingTotal:   balance.PendingTotal,
		AvailableTotal: balance.AvailableTotal,
	})
}

// ListLedgerEntries returns a creator's ledger entries, newest first
func (h *Handler) ListLedgerEntries(c *gin.Context) {
	creatorID := c.Param("creator_id")
	if !creatorScoped(c, creatorID) {
		return
	}

	entries, err := h.ledger.ListEntries(c.Request.Context(), creatorID, limitParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]ledgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toLedgerEntryResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"entries": out})
}

// CreateWithdrawal requests a withdrawal against the caller's available balance
func (h *Handler) CreateWithdrawal(c *gin.Context) {
	creatorID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req createWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	withdrawal, err := h.ledger.RequestWithdrawal(c.Request.Context(), creatorID, req.Amount, domain.WithdrawalMethod(req.Method))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toWithdrawalResponse(withdrawal))
}

// GetWithdrawal retrieves a withdrawal by its public ID
func (h *Handler) GetWithdrawal(c *gin.Context) {
	withdrawal, err := h.ledger.GetWithdrawal(c.Request.Context(), c.Param("withdrawal_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !creatorScoped(c, withdrawal.CreatorID) {
		return
	}

	c.JSON(http.StatusOK, toWithdrawalResponse(withdrawal))
}

// ListWithdrawals returns a creator's withdrawals, newest first
func (h *Handler) ListWithdrawals(c *gin.Context) {
	creatorID := c.Param("creator_id")
	if !creatorScoped(c, creatorID) {
		return
	}

	withdrawals, err := h.ledger.ListWithdrawals(c.Request.Context(), creatorID, limitParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]withdrawalResponse, 0, len(withdrawals))
	for _, w := range withdrawals {
		out = append(out, toWithdrawalResponse(w))
	}
	c.JSON(http.StatusOK, gin.H{"withdrawals": out})
}

// UpdateWithdrawalStatus transitions a withdrawal through its state machine.
// Called by the payment processor, so API key only.
func (h *Handler) UpdateWithdrawalStatus(c *gin.Context) {
	var req updateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	withdrawal, err := h.ledger.UpdateStatus(c.Request.Context(), c.Param("withdrawal_id"), domain.WithdrawalStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWithdrawalResponse(withdrawal))
}

// CreateProposal opens a governance proposal for voting
func (h *Handler) CreateProposal(c *gin.Context) {
	creatorID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req createProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	days := req.VotingPeriodDays
	if days <= 0 {
		days = defaultVotingPeriodDays
	}

	proposal, err := h.tally.CreateProposal(c.Request.Context(), governance.CreateProposalInput{
		CreatorID:    creatorID,
		Category:     domain.ProposalCategory(req.Category),
		Title:        req.Title,
		Description:  req.Description,
		VotingPeriod: time.Duration(days) * 24 * time.Hour,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProposalResponse(proposal))
}

// GetProposal retrieves a proposal with its running tallies
func (h *Handler) GetProposal(c *gin.Context) {
	proposal, err := h.tally.GetProposal(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProposalResponse(proposal))
}

// ListProposals retrieves proposals by status, defaulting to active
func (h *Handler) ListProposals(c *gin.Context) {
	status := domain.ProposalStatus(c.DefaultQuery("status", string(domain.ProposalStatusActive)))

	proposals, err := h.tally.ListProposals(c.Request.Context(), status, limitParam(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"proposals": out})
}

// CastVote records the caller's vote on a proposal. Re-voting replaces the
// earlier vote.
func (h *Handler) CastVote(c *gin.Context) {
	voterID, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req castVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	proposal, err := h.tally.CastVote(c.Request.Context(), c.Param("proposal_id"), voterID, domain.VoteChoice(req.Choice))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProposalResponse(proposal))
}

// ListVotes returns the current votes on a proposal
func (h *Handler) ListVotes(c *gin.Context) {
	votes, err := h.tally.ListVotes(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]voteResponse, 0, len(votes))
	for _, v := range votes {
		out = append(out, toVoteResponse(v))
	}
	c.JSON(http.StatusOK, gin.H{"votes": out})
}

// VetoProposal lets a verified founder veto an active proposal
func (h *Handler) VetoProposal(c *gin.Context) {
	founderID, ok := callerIdentity(c)
	if !ok {
		return
	}

	proposal, err := h.tally.Veto(c.Request.Context(), c.Param("proposal_id"), founderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProposalResponse(proposal))
}
