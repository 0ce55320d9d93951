package main

import (
	"log"
	"time"

	"dashboard-gateway/config"
	routes "dashboard-gateway/internal/app/http"
	"dashboard-gateway/internal/domain/access"
	"dashboard-gateway/internal/domain/plans"
	"dashboard-gateway/internal/infra/highlevel"
	"dashboard-gateway/internal/infra/logging"
	"dashboard-gateway/internal/infra/stripebilling"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	billing := stripebilling.New(cfg.StripeSecretKey, cfg.PriceTiers, cfg.ProviderTimeout, logger)

	var crm plans.CRMSource
	if cfg.CRMEnabled {
		crm = highlevel.NewClient(cfg.CRMAPIKey, cfg.CRMLocationID, cfg.ProviderTimeout, logger)
	}

	resolver := plans.NewResolver(billing, crm, cfg.CRMEnabled, logger)
	verifier := &access.Verifier{Plans: resolver}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, cfg, verifier)

	r.Run(":" + cfg.Port)
}
