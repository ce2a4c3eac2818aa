package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"reward-ops.backend/internal/interfaces/http/handlers"
)

type routeDeps struct {
	registrationHandler *handlers.RegistrationHandler
	authHandler         *handlers.AuthHandler
	approvalHandler     *handlers.ApprovalHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Registration routes (public, OTP gated)
		register := v1.Group("/register")
		{
			register.POST("/shop-owner", d.registrationHandler.RegisterShopOwner)
			register.POST("/seller", d.registrationHandler.RegisterSeller)
			register.POST("/technician", d.registrationHandler.RegisterTechnician)
			register.POST("/verify", d.registrationHandler.VerifyRegistration)
		}

		// Auth routes (public, OTP gated)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.RequestLogin)
			auth.POST("/login/verify", d.authHandler.VerifyLogin)
		}

		// Approval routes (reviewers only)
		approvals := v1.Group("/approvals")
		approvals.Use(d.authMiddleware)
		{
			approvals.GET("/pending", d.approvalHandler.ListPending)
			approvals.POST("/:id/approve", d.approvalHandler.Approve)
			approvals.POST("/:id/reject", d.approvalHandler.Reject)
			approvals.GET("/:id/history", d.approvalHandler.History)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
