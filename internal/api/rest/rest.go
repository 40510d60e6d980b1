package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/theanh098/sei-market-oxide/internal/api/middleware"
)

// SetupRoutes configures all REST API routes.
// The v1 group requires authentication only when credentials are configured.
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	v1 := router.Group("/v1")
	if authCfg.Enabled() {
		v1.Use(middleware.Auth(authCfg))
	}
	{
		v1.GET("/stream-txs", handler.ListStreamTxs)
		v1.GET("/nfts/:token_address/:token_id", handler.GetNFT)
		v1.GET("/nfts/:token_address/:token_id/activities", handler.ListNFTActivities)
		v1.GET("/sales/:tx_hash", handler.ListSales)
		v1.GET("/wallets/:address/loyalty-points", handler.GetLoyaltyPoints)
	}
}
