package dashboard

import (
	"net/http"

	"dashboard-gateway/internal/domain/access"
	"dashboard-gateway/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// Handler serves the tier-scoped dashboard routes. The response body is the
// payload a server-rendered dashboard page receives as props; rendering
// itself lives in the frontend.
type Handler struct {
	Access *access.Verifier
}

type planPayload struct {
	Plan          plans.Tier `json:"plan"`
	Name          string     `json:"name"`
	DashboardPath string     `json:"dashboardPath"`
	Rank          int        `json:"rank"`
}

func payloadFor(tier plans.Tier) planPayload {
	return planPayload{
		Plan:          tier,
		Name:          tier.DisplayName(),
		DashboardPath: tier.DashboardPath(),
		Rank:          tier.Rank(),
	}
}

// Overview handles the bare /dashboard root: resolve the user's tier and
// send them to their own dashboard. Unauthenticated traffic that slipped
// past the edge guard (e.g. a stale cookie) goes to sign-in.
func (h *Handler) Overview(c *gin.Context) {
	email := c.GetString("email")
	if email == "" {
		c.Redirect(http.StatusTemporaryRedirect, access.SignInPath)
		return
	}

	tier := h.Access.Plans.Resolve(c.Request.Context(), email)
	c.Redirect(http.StatusTemporaryRedirect, tier.DashboardPath())
}

// ByTier handles /dashboard/:tier. Denials redirect rather than 403: either
// to sign-in, or to the dashboard for the tier the user actually has.
func (h *Handler) ByTier(c *gin.Context) {
	requested, ok := plans.ParseTier(c.Param("tier"))
	if !ok {
		c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
		return
	}

	decision := h.Access.Verify(c.Request.Context(), c.GetString("email"), requested)
	if !decision.HasAccess {
		c.Redirect(http.StatusTemporaryRedirect, decision.RedirectTo)
		return
	}

	activeTab := c.DefaultQuery("tab", "overview")
	c.JSON(http.StatusOK, gin.H{
		"session": gin.H{
			"user": gin.H{"email": c.GetString("email")},
		},
		"userPlan":  payloadFor(decision.UserPlan),
		"activeTab": activeTab,
	})
}
