package plans

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrNoSignal means a source answered cleanly but has no paid-plan signal
// for the identity. Distinct from a transport failure, though the resolver
// treats both as "fall through to the next source".
var ErrNoSignal = errors.New("no plan signal")

// BillingSource reads the payment provider, the primary truth for paid tiers.
type BillingSource interface {
	LookupPlan(ctx context.Context, email string) (Tier, error)
}

// CRMSource reads the CRM contact record, consulted only when billing shows
// no active paid subscription.
type CRMSource interface {
	LookupPlan(ctx context.Context, email string) (Tier, error)
}

// Resolver computes the single authoritative tier for an identity.
//
// Fixed priority, short-circuiting: a billing signal wins unconditionally
// over CRM (a paid subscription is ground truth), CRM is a fallback behind a
// feature flag, and free is the default. This is a fallback chain, not a
// merge: disagreeing sources are never reconciled because billing
// short-circuits first.
type Resolver struct {
	billing    BillingSource
	crm        CRMSource
	crmEnabled bool
	log        *zap.Logger
}

func NewResolver(billing BillingSource, crm CRMSource, crmEnabled bool, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{
		billing:    billing,
		crm:        crm,
		crmEnabled: crmEnabled,
		log:        log,
	}
}

// Resolve never fails: adapter errors are downgraded to "no signal" and
// logged, so a provider outage degrades a user to free instead of breaking
// the page render. Callers can always trust the returned Tier.
func (r *Resolver) Resolve(ctx context.Context, email string) Tier {
	email = NormalizeEmail(email)
	if email == "" {
		return TierFree
	}

	if r.billing != nil {
		tier, err := r.billing.LookupPlan(ctx, email)
		switch {
		case err == nil:
			return tier
		case !errors.Is(err, ErrNoSignal):
			r.log.Warn("billing plan lookup failed, falling back",
				zap.String("email", email),
				zap.Error(err))
		}
	}

	if r.crmEnabled && r.crm != nil {
		tier, err := r.crm.LookupPlan(ctx, email)
		switch {
		case err == nil:
			return tier
		case !errors.Is(err, ErrNoSignal):
			r.log.Warn("crm plan lookup failed, defaulting to free",
				zap.String("email", email),
				zap.Error(err))
		}
	}

	return TierFree
}
