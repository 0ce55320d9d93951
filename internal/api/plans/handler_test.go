package plans

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dashboard-gateway/internal/domain/plans"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	tier plans.Tier
	seen string
}

func (f *fakeResolver) Resolve(ctx context.Context, email string) plans.Tier {
	f.seen = email
	return f.tier
}

func TestListPlans(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/plans", ListPlans)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plans", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body []struct {
		Plan string `json:"plan"`
		Rank int    `json:"rank"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 4)
	assert.Equal(t, "free", body[0].Plan)
	assert.Equal(t, "enterprise", body[3].Plan)
}

func TestCurrentPlan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	resolver := &fakeResolver{tier: plans.TierPro}
	h := &Handler{Plans: resolver}

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("email", "a@x.com") })
	r.GET("/api/plan", h.CurrentPlan)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plan", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plan":"pro"`)
	assert.Contains(t, w.Body.String(), `"dashboardPath":"/dashboard/pro"`)
	assert.Equal(t, "a@x.com", resolver.seen)
}

func TestLookupPlan(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantPlan   string
	}{
		{
			name:       "valid lookup",
			body:       `{"email":"B@X.Com"}`,
			wantStatus: http.StatusOK,
			wantPlan:   "starter",
		},
		{
			name:       "missing email",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank email",
			body:       `{"email":"   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			h := &Handler{Plans: &fakeResolver{tier: plans.TierStarter}}
			r := gin.New()
			r.POST("/admin/plan/lookup", h.LookupPlan)

			req := httptest.NewRequest(http.MethodPost, "/admin/plan/lookup", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantPlan != "" {
				assert.Contains(t, w.Body.String(), `"plan":"`+tt.wantPlan+`"`)
				// Identity key is normalized before lookup.
				assert.Contains(t, w.Body.String(), `"email":"b@x.com"`)
			}
		})
	}
}
