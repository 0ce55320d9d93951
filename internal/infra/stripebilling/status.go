package stripebilling

import "strings"

// NormalizeStatus collapses Stripe subscription statuses into the buckets
// this service cares about.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(s) {
	case "":
		return "none"
	case "active":
		return "active"
	case "trialing":
		return "trialing"
	case "past_due", "unpaid":
		return "past_due"
	case "canceled", "incomplete_expired":
		return "canceled"
	default:
		return strings.TrimSpace(s)
	}
}

// GrantsPaidTier reports whether a normalized status counts as a paid-plan
// signal. Unknown statuses fail closed: they must not grant a paid tier.
func GrantsPaidTier(normalized string) bool {
	switch normalized {
	case "active", "trialing":
		return true
	default:
		return false
	}
}
