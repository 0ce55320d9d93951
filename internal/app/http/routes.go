package routes

import (
	"dashboard-gateway/config"
	"dashboard-gateway/internal/api/dashboard"
	plansapi "dashboard-gateway/internal/api/plans"
	"dashboard-gateway/internal/app/http/middleware"
	"dashboard-gateway/internal/domain/access"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *config.Config, verifier *access.Verifier) {
	// Cheap cookie-presence gate in front of everything; fine-grained tier
	// checks happen per page below.
	r.Use(middleware.EdgeGuard())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/plans", plansapi.ListPlans)

	dash := &dashboard.Handler{Access: verifier}
	plan := &plansapi.Handler{Plans: verifier.Plans}

	// Dashboard pages are browser-navigated: session parsing is best-effort
	// and denial is a redirect, never a 401 body.
	pages := r.Group("/")
	pages.Use(middleware.OptionalSession(cfg.JWTSecret))
	pages.GET("/dashboard", dash.Overview)
	pages.GET("/dashboard/:tier", dash.ByTier)

	// Authenticated API
	api := r.Group("/api")
	api.Use(middleware.RequireSession(cfg.JWTSecret))
	api.GET("/plan", plan.CurrentPlan)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(
		middleware.RequireSession(cfg.JWTSecret),
		middleware.RequireRole("admin"),
		middleware.SanitizeAndCleanInputMiddleware(),
	)
	admin.POST("/plan/lookup", plan.LookupPlan)
}
