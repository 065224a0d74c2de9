package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/origin-platform/rights-ledger/internal/api/middleware"
)

// SetupRoutes wires the REST surface onto a gin router. Creator-facing
// endpoints accept JWT or API key auth; ingestion and processor callbacks are
// API key only.
func SetupRoutes(router *gin.Engine, handler *Handler, authCfg middleware.AuthConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")

	authed := v1.Group("")
	authed.Use(middleware.Auth(authCfg))
	{
		authed.POST("/contents", handler.CreateContent)
		authed.GET("/contents/:content_id", handler.GetContent)
		authed.POST("/contents/:content_id/certificates", handler.IssueCertificate)
		authed.GET("/contents/:content_id/certificate", handler.GetContentCertificate)

		authed.GET("/certificates/:certificate_id", handler.GetCertificate)
		authed.POST("/certificates/:certificate_id/revoke", handler.RevokeCertificate)
		authed.GET("/certificates/:certificate_id/verification", handler.VerifyCertificate)

		authed.GET("/creators/:creator_id/balance", handler.GetBalance)
		authed.GET("/creators/:creator_id/entries", handler.ListLedgerEntries)
		authed.GET("/creators/:creator_id/withdrawals", handler.ListWithdrawals)

		authed.POST("/withdrawals", handler.CreateWithdrawal)
		authed.GET("/withdrawals/:withdrawal_id", handler.GetWithdrawal)

		authed.POST("/proposals", handler.CreateProposal)
		authed.GET("/proposals", handler.ListProposals)
		authed.GET("/proposals/:proposal_id", handler.GetProposal)
		authed.POST("/proposals/:proposal_id/votes", handler.CastVote)
		authed.GET("/proposals/:proposal_id/votes", handler.ListVotes)
		authed.POST("/proposals/:proposal_id/veto", handler.VetoProposal)
	}

	service := v1.Group("")
	service.Use(middleware.APIKeyAuth(authCfg))
	service.Use(middleware.SignedBody(authCfg.WebhookSecret))
	{
		service.POST("/revenue/events", handler.RecordRevenueEvent)
		service.PATCH("/withdrawals/:withdrawal_id/status", handler.UpdateWithdrawalStatus)
	}
}
