package checklist

import (
	"errors"
	"log/slog"
	"net/http"

	"minesafety/middleware"
	"minesafety/model"
	"minesafety/tracker"

	"github.com/gin-gonic/gin"
)

func ChecklistController(router *gin.Engine, svc *tracker.Service, secret []byte) {
	routes := router.Group("/api/checklist", middleware.AccessTokenMiddleware(secret))
	{
		routes.GET("/stats", middleware.RoleMiddleware(model.RoleSupervisor, model.RoleAdmin, model.RoleDGMSOfficer), func(c *gin.Context) {
			GetChecklistStats(c, svc)
		})
		routes.GET("/templates/:role", func(c *gin.Context) {
			GetChecklistTemplate(c)
		})
		routes.PATCH("/complete", func(c *gin.Context) {
			CompleteChecklistItem(c, svc)
		})
		routes.GET("/:userId", func(c *gin.Context) {
			GetUserChecklist(c, svc)
		})
	}
}

// failure carries the messages one operation shows for each error class.
type failure struct {
	denied   string
	internal string
}

func respondError(c *gin.Context, err error, f failure) {
	switch {
	case errors.Is(err, tracker.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": f.denied})
	case errors.Is(err, tracker.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
	case errors.Is(err, tracker.ErrChecklistNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Checklist not found"})
	case errors.Is(err, tracker.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Checklist item not found"})
	case errors.Is(err, tracker.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date range"})
	default:
		slog.Error("checklist request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": f.internal})
	}
}
