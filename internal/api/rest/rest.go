package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/rustaceans/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Public reads
		v1.GET("/collection", handler.GetCollection)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.GET("/tokens/:id/uri", handler.GetTokenURI)
		v1.GET("/tokens/:id/image.svg", handler.GetTokenSVG)
		v1.GET("/tokens/:id/image.png", handler.GetTokenPNG)
		v1.GET("/owners/:address/balance", handler.GetBalance)

		// Issuance (caller identified by JWT subject, or the owner for API keys)
		authed := v1.Group("", middleware.Auth(authCfg))
		authed.POST("/mint", handler.Mint)
		authed.POST("/craft", handler.Craft)
		authed.POST("/tokens/:id/transfer", handler.Transfer)

		// Owner-only administration
		admin := authed.Group("/admin")
		admin.PUT("/price", handler.SetPrice)
		admin.PUT("/development-fee", handler.SetDevelopmentFee)
		admin.PUT("/cranes", handler.SetCranes)
		admin.POST("/withdraw", handler.Withdraw)
	}
}
