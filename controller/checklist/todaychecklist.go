package checklist

import (
	"net/http"

	"minesafety/middleware"
	"minesafety/tracker"

	"github.com/gin-gonic/gin"
)

var readFailure = failure{
	denied:   "Access denied. You can only view your own checklist.",
	internal: "Server error while fetching checklist",
}

// GetUserChecklist returns today's checklist for :userId, creating it on first read.
func GetUserChecklist(c *gin.Context, svc *tracker.Service) {
	principal, _ := middleware.PrincipalFrom(c)
	userID := c.Param("userId")

	checklist, role, err := svc.GetOrCreateDailyChecklist(c.Request.Context(), principal, userID)
	if err != nil {
		respondError(c, err, readFailure)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"data":     checklist,
		"userRole": role,
	})
}

func GetChecklistTemplate(c *gin.Context) {
	role := c.Param("role")
	tpl, recognized := tracker.ResolveTemplate(role)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"role":       tpl.Role,
		"recognized": recognized,
		"items":      tpl.Items(),
	})
}
