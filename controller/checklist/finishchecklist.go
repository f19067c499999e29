package checklist

import (
	"net/http"

	"minesafety/dto"
	"minesafety/middleware"
	"minesafety/tracker"

	"github.com/gin-gonic/gin"
)

var writeFailure = failure{
	denied:   "Access denied. You can only update your own checklist.",
	internal: "Server error while updating checklist item",
}

// CompleteChecklistItem toggles one item between completed and incomplete.
func CompleteChecklistItem(c *gin.Context, svc *tracker.Service) {
	var req dto.CompleteChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "checklistId and itemId are required"})
		return
	}
	principal, _ := middleware.PrincipalFrom(c)

	checklist, completed, err := svc.ToggleChecklistItem(c.Request.Context(), principal, req.ChecklistID, req.ItemID)
	if err != nil {
		respondError(c, err, writeFailure)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    checklist,
		"message": tracker.ToggleMessage(completed),
	})
}
