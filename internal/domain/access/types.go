package access

import "dashboard-gateway/internal/domain/plans"

// SignInPath is where unauthenticated dashboard traffic is sent.
const SignInPath = "/#login"

// Decision is the per-request outcome of verifying a tier-scoped page.
// Produced once per protected-page request, never persisted.
type Decision struct {
	HasAccess     bool       `json:"hasAccess"`
	UserPlan      plans.Tier `json:"userPlan"`
	RequestedPlan plans.Tier `json:"requestedPlan"`
	RedirectTo    string     `json:"redirectTo,omitempty"`
}
