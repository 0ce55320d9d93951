package stripebilling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "none"},
		{"  ", "none"},
		{"active", "active"},
		{"trialing", "trialing"},
		{"past_due", "past_due"},
		{"unpaid", "past_due"},
		{"canceled", "canceled"},
		{"incomplete_expired", "canceled"},
		{"paused", "paused"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeStatus(tt.input), "input=%q", tt.input)
	}
}

func TestGrantsPaidTier_FailsClosedOnUnknown(t *testing.T) {
	assert.True(t, GrantsPaidTier("active"))
	assert.True(t, GrantsPaidTier("trialing"))
	assert.False(t, GrantsPaidTier("past_due"))
	assert.False(t, GrantsPaidTier("canceled"))
	assert.False(t, GrantsPaidTier("none"))
	assert.False(t, GrantsPaidTier("some_future_status"))
}
