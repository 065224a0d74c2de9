package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/origin-platform/rights-ledger/internal/domain"
	"github.com/origin-platform/rights-ledger/internal/logger"
)

// errorResponse is the standard error envelope
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondWithError(c *gin.Context, status int, code string, message string) {
	c.JSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, "bad_request", message)
}

// respondServiceError maps domain error kinds onto HTTP statuses. Unknown
// errors become opaque 500s; the detail stays in the logs.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidContent):
		respondWithError(c, http.StatusBadRequest, "invalid_content", err.Error())
	case errors.Is(err, domain.ErrNegativeAmount):
		respondWithError(c, http.StatusBadRequest, "negative_amount", err.Error())
	case errors.Is(err, domain.ErrUnknownChannelType):
		respondWithError(c, http.StatusBadRequest, "unknown_channel_type", err.Error())
	case errors.Is(err, domain.ErrBelowMinimum):
		respondWithError(c, http.StatusBadRequest, "below_minimum", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(c, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domain.ErrUnauthorizedCreator):
		respondWithError(c, http.StatusForbidden, "unauthorized_creator", err.Error())
	case errors.Is(err, domain.ErrNotFounder):
		respondWithError(c, http.StatusForbidden, "not_founder", err.Error())
	case errors.Is(err, domain.ErrImmutableRuleViolation):
		respondWithError(c, http.StatusForbidden, "immutable_rule", err.Error())
	case errors.Is(err, domain.ErrDuplicateCertificate):
		respondWithError(c, http.StatusConflict, "duplicate_certificate", err.Error())
	case errors.Is(err, domain.ErrAlreadyRevoked):
		respondWithError(c, http.StatusConflict, "already_revoked", err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		respondWithError(c, http.StatusConflict, "insufficient_balance", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		respondWithError(c, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, domain.ErrProposalClosed):
		respondWithError(c, http.StatusConflict, "proposal_closed", err.Error())
	case errors.Is(err, domain.ErrWeightExceedsCap):
		respondWithError(c, http.StatusConflict, "weight_exceeds_cap", err.Error())
	case errors.Is(err, domain.ErrAnchorTimeout):
		respondWithError(c, http.StatusGatewayTimeout, "anchor_timeout", err.Error())
	default:
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("path", c.Request.URL.Path))
		respondWithError(c, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}
