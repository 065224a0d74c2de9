package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/origin-platform/rights-ledger/internal/webhook"
)

// SetupCORS allows cross-origin requests from the web frontends. The
// signature headers are included so signed service calls pass preflight.
// FIXME: restrict origins once the frontend domains are settled.
func SetupCORS() gin.HandlerFunc {
	config := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Authorization",
			webhook.HeaderSignature, webhook.HeaderTimestamp, webhook.HeaderEventID,
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}
	return cors.New(config)
}
