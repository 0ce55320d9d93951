package plans

import (
	"net/http"

	"dashboard-gateway/internal/domain/access"
	"dashboard-gateway/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// Handler serves the plan catalog and resolution endpoints.
type Handler struct {
	Plans access.PlanResolver
}

// ListPlans is the public tier catalog the pricing and upgrade surfaces
// read.
func ListPlans(c *gin.Context) {
	out := make([]gin.H, 0, 4)
	for _, tier := range plans.AllTiers() {
		out = append(out, gin.H{
			"plan":          tier,
			"name":          tier.DisplayName(),
			"rank":          tier.Rank(),
			"dashboardPath": tier.DashboardPath(),
		})
	}
	c.JSON(http.StatusOK, out)
}

// CurrentPlan resolves the session user's tier. Freshly resolved on every
// call; there is no cache to go stale.
func (h *Handler) CurrentPlan(c *gin.Context) {
	email := c.GetString("email")
	tier := h.Plans.Resolve(c.Request.Context(), email)
	c.JSON(http.StatusOK, gin.H{
		"email":         email,
		"plan":          tier,
		"name":          tier.DisplayName(),
		"dashboardPath": tier.DashboardPath(),
	})
}

// LookupPlan lets support staff resolve an arbitrary email. Admin only.
func (h *Handler) LookupPlan(c *gin.Context) {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || plans.NormalizeEmail(body.Email) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid email"})
		return
	}

	tier := h.Plans.Resolve(c.Request.Context(), body.Email)
	c.JSON(http.StatusOK, gin.H{
		"email":         plans.NormalizeEmail(body.Email),
		"plan":          tier,
		"name":          tier.DisplayName(),
		"dashboardPath": tier.DashboardPath(),
	})
}
