package stripebilling

import (
	"context"
	"fmt"
	"time"

	"dashboard-gateway/internal/domain/plans"

	"github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/client"
	"go.uber.org/zap"
)

const defaultTimeout = 5 * time.Second

// Adapter reads the current Stripe subscription for an email and maps its
// price id to a plan tier. Read-only: checkout, webhooks and plan changes
// live elsewhere.
type Adapter struct {
	api        *client.API
	priceTiers map[string]plans.Tier
	timeout    time.Duration
	log        *zap.Logger
}

// New builds an adapter around its own Stripe client. The price table is
// immutable process-lifetime configuration; monthly and yearly price ids
// map to the same tier.
func New(secretKey string, priceTiers map[string]plans.Tier, timeout time.Duration, log *zap.Logger) *Adapter {
	api := &client.API{}
	api.Init(secretKey, nil)
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		api:        api,
		priceTiers: priceTiers,
		timeout:    timeout,
		log:        log,
	}
}

// LookupPlan finds the Stripe customer by email (first match) and their
// most recent active subscription (limit 1). No customer, no active
// subscription or an unmapped price id all return plans.ErrNoSignal so the
// resolver can fall through to the CRM; transport failures surface as
// errors for the same downgrade path. This adapter never gets to crash a
// page render.
func (a *Adapter) LookupPlan(ctx context.Context, email string) (plans.Tier, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	custParams := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	custParams.Limit = stripe.Int64(1)
	custParams.Context = ctx

	custIt := a.api.Customers.List(custParams)
	if !custIt.Next() {
		if err := custIt.Err(); err != nil {
			return "", fmt.Errorf("list customers: %w", err)
		}
		return "", plans.ErrNoSignal
	}
	cus := custIt.Customer()

	subParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(cus.ID),
		Status:   stripe.String(string(stripe.SubscriptionStatusActive)),
	}
	subParams.Limit = stripe.Int64(1)
	subParams.Context = ctx

	subIt := a.api.Subscriptions.List(subParams)
	if !subIt.Next() {
		if err := subIt.Err(); err != nil {
			return "", fmt.Errorf("list subscriptions: %w", err)
		}
		return "", plans.ErrNoSignal
	}
	sub := subIt.Subscription()

	// Status is filtered server-side; re-check anyway and fail closed on
	// anything that is not a paying state.
	if !GrantsPaidTier(NormalizeStatus(string(sub.Status))) {
		return "", plans.ErrNoSignal
	}

	if sub.Items == nil || len(sub.Items.Data) == 0 || sub.Items.Data[0].Price == nil {
		return "", plans.ErrNoSignal
	}

	return a.tierForPrice(email, sub.Items.Data[0].Price.ID)
}

// tierForPrice resolves a price id against the configured table. Unmapped
// ids are configuration drift against the Stripe catalog and can silently
// demote a paying customer to free, so they log at warn before degrading
// to no-signal.
func (a *Adapter) tierForPrice(email, priceID string) (plans.Tier, error) {
	tier, ok := a.priceTiers[priceID]
	if !ok {
		a.log.Warn("stripe price id not in plan table, treating as unpaid",
			zap.String("email", email),
			zap.String("price_id", priceID))
		return "", plans.ErrNoSignal
	}
	return tier, nil
}
