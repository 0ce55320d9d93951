package stripebilling

import (
	"testing"

	"dashboard-gateway/internal/domain/plans"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestTierForPrice(t *testing.T) {
	a := &Adapter{
		priceTiers: map[string]plans.Tier{
			"price_starter_m":    plans.TierStarter,
			"price_starter_y":    plans.TierStarter,
			"price_pro_m":        plans.TierPro,
			"price_enterprise_m": plans.TierEnterprise,
		},
		log: zaptest.NewLogger(t),
	}

	tests := []struct {
		name     string
		priceID  string
		expected plans.Tier
		wantErr  error
	}{
		{name: "monthly starter", priceID: "price_starter_m", expected: plans.TierStarter},
		{name: "yearly maps to same tier", priceID: "price_starter_y", expected: plans.TierStarter},
		{name: "pro", priceID: "price_pro_m", expected: plans.TierPro},
		{name: "enterprise", priceID: "price_enterprise_m", expected: plans.TierEnterprise},
		// Configuration drift: an unmapped price is "not a recognized paid
		// plan", handed to the CRM fallback instead of failing closed.
		{name: "unmapped price id", priceID: "price_unknown", wantErr: plans.ErrNoSignal},
		{name: "empty price id", priceID: "", wantErr: plans.ErrNoSignal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier, err := a.tierForPrice("a@x.com", tt.priceID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tier)
		})
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	a := New("sk_test_123", nil, 0, nil)
	assert.Equal(t, defaultTimeout, a.timeout)
	require.NotNil(t, a.log)
	require.NotNil(t, a.api)
}
