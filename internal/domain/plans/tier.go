package plans

import "strings"

// Tier is the unit of dashboard access control.
type Tier string

// Tier constants (single source of truth)
const (
	TierFree       Tier = "free"
	TierStarter    Tier = "starter"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// AllTiers in display order, cheapest first.
func AllTiers() []Tier {
	return []Tier{TierFree, TierStarter, TierPro, TierEnterprise}
}

// ParseTier validates an untrusted plan string (CRM fields, route params,
// request bodies). Unknown values are rejected, never coerced.
func ParseTier(s string) (Tier, bool) {
	switch Tier(strings.ToLower(strings.TrimSpace(s))) {
	case TierFree:
		return TierFree, true
	case TierStarter:
		return TierStarter, true
	case TierPro:
		return TierPro, true
	case TierEnterprise:
		return TierEnterprise, true
	}
	return "", false
}

// Rank orders tiers for display only (badges, upgrade prompts). Access
// control never compares ranks.
func (t Tier) Rank() int {
	switch t {
	case TierStarter:
		return 1
	case TierPro:
		return 2
	case TierEnterprise:
		return 3
	default:
		return 0
	}
}

// DisplayName is the human-facing plan label.
func (t Tier) DisplayName() string {
	switch t {
	case TierStarter:
		return "Starter"
	case TierPro:
		return "Pro"
	case TierEnterprise:
		return "Enterprise"
	default:
		return "Free"
	}
}

// DashboardPath is the tier-scoped dashboard route for t.
func (t Tier) DashboardPath() string {
	return "/dashboard/" + string(t)
}

// NormalizeEmail canonicalizes the identity key used to correlate a user
// across billing and CRM. Empty after normalization means "cannot resolve".
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
