package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"dashboard-gateway/internal/domain/plans"

	"github.com/joho/godotenv"
)

// Config is immutable process-lifetime configuration, built once at start
// and injected into everything that needs it. No hot reload.
type Config struct {
	Port       string
	AppURL     string
	CORSOrigin string

	JWTSecret string

	LogLevel  string
	LogFormat string

	StripeSecretKey string
	// PriceTiers maps Stripe price ids to plan tiers. Monthly and yearly
	// variants of a tier both appear here. Must be kept in sync with the
	// Stripe catalog by hand.
	PriceTiers map[string]plans.Tier

	// CRMEnabled gates the GoHighLevel fallback entirely: when false no CRM
	// network call is ever made.
	CRMEnabled    bool
	CRMAPIKey     string
	CRMLocationID string

	// ProviderTimeout bounds each outbound billing/CRM call so resolution
	// can never hang a page render.
	ProviderTimeout time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		AppURL:          getEnv("APP_URL", "http://localhost:3000"),
		CORSOrigin:      getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		CRMEnabled:      getEnv("ENABLE_GHL", "false") == "true",
		CRMAPIKey:       os.Getenv("GOHIGHLEVEL_API_KEY"),
		CRMLocationID:   os.Getenv("GOHIGHLEVEL_LOCATION_ID"),
		ProviderTimeout: getDuration("PROVIDER_TIMEOUT_SECONDS", 5*time.Second),
	}

	var missing []string
	cfg.JWTSecret = mustEnv("JWT_SECRET", &missing)
	cfg.StripeSecretKey = mustEnv("STRIPE_SECRET_KEY", &missing)

	if cfg.CRMEnabled {
		if cfg.CRMAPIKey == "" {
			missing = append(missing, "GOHIGHLEVEL_API_KEY")
		}
		if cfg.CRMLocationID == "" {
			missing = append(missing, "GOHIGHLEVEL_LOCATION_ID")
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg.PriceTiers = loadPriceTiers()

	return cfg, nil
}

// loadPriceTiers builds the price table from the STRIPE_<TIER>_PRICE_ID and
// STRIPE_<TIER>_YEARLY_PRICE_ID variables. Unset entries are skipped, so a
// partially configured catalog degrades those tiers to free rather than
// failing startup.
func loadPriceTiers() map[string]plans.Tier {
	table := map[string]plans.Tier{}
	for _, tier := range []plans.Tier{plans.TierStarter, plans.TierPro, plans.TierEnterprise} {
		upper := strings.ToUpper(string(tier))
		for _, key := range []string{
			"STRIPE_" + upper + "_PRICE_ID",
			"STRIPE_" + upper + "_YEARLY_PRICE_ID",
		} {
			if id := strings.TrimSpace(os.Getenv(key)); id != "" {
				table[id] = tier
			}
		}
	}
	return table
}

func mustEnv(key string, missing *[]string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		*missing = append(*missing, key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}
