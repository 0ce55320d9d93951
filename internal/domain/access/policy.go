package access

import (
	"context"

	"dashboard-gateway/internal/domain/plans"
)

// CanAccessPlan gates a tier-scoped dashboard. Access is strict equality,
// not hierarchy: a pro user is denied the enterprise dashboard exactly as a
// free user would be, and also denied the starter one. Every tier gets its
// own dashboard and only that dashboard.
func CanAccessPlan(userPlan, requiredPlan plans.Tier) bool {
	return userPlan == requiredPlan
}

// PlanResolver is the slice of the plan resolver the verifier needs.
type PlanResolver interface {
	Resolve(ctx context.Context, email string) plans.Tier
}

// Verifier turns an authenticated identity plus a requested tier into an
// allow/redirect decision.
type Verifier struct {
	Plans PlanResolver
}

// Verify decides access for one page request.
//
// No email means no session: the resolver is never invoked and the user is
// sent to sign-in. On denial the redirect targets the dashboard for the
// user's actual tier, so every authenticated user always lands on some
// valid dashboard.
func (v *Verifier) Verify(ctx context.Context, email string, required plans.Tier) Decision {
	if plans.NormalizeEmail(email) == "" {
		return Decision{
			HasAccess:     false,
			UserPlan:      plans.TierFree,
			RequestedPlan: required,
			RedirectTo:    SignInPath,
		}
	}

	userPlan := v.Plans.Resolve(ctx, email)
	if !CanAccessPlan(userPlan, required) {
		return Decision{
			HasAccess:     false,
			UserPlan:      userPlan,
			RequestedPlan: required,
			RedirectTo:    userPlan.DashboardPath(),
		}
	}

	return Decision{
		HasAccess:     true,
		UserPlan:      userPlan,
		RequestedPlan: required,
	}
}
