package user

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"minesafety/dto"
	"minesafety/middleware"
	"minesafety/model"
	"minesafety/services"

	"github.com/gin-gonic/gin"
)

func UserController(router *gin.Engine, users *services.GormUserDirectory, secret []byte) {
	routes := router.Group("/api/users", middleware.AccessTokenMiddleware(secret), middleware.RoleMiddleware(model.RoleAdmin))
	{
		routes.GET("", func(c *gin.Context) {
			GetAllUsers(c, users)
		})
		routes.PUT("/:id/shift", func(c *gin.Context) {
			UpdateUserShift(c, users)
		})
	}
}

// GetAllUsers lists the field staff: workers and supervisors.
func GetAllUsers(c *gin.Context, users *services.GormUserDirectory) {
	list, err := users.ListUsersByRole(c.Request.Context(), model.RoleWorker, model.RoleSupervisor)
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func UpdateUserShift(c *gin.Context, users *services.GormUserDirectory) {
	var req dto.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input"})
		return
	}

	user, err := users.FindUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		slog.Error("find user failed", "user_id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if user.Role != model.RoleWorker && user.Role != model.RoleSupervisor {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Shift can only be assigned to workers and supervisors"})
		return
	}

	if req.ShiftLocation != nil {
		user.ShiftLocation = strings.TrimSpace(*req.ShiftLocation)
	}
	if req.ShiftDate != "" {
		date, err := parseShiftDate(req.ShiftDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid shift date"})
			return
		}
		user.ShiftDate = &date
	}

	if err := users.UpdateShift(c.Request.Context(), user); err != nil {
		slog.Error("update shift failed", "user_id", user.UserID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shift assignment updated successfully",
		"user":    user,
	})
}

// parseShiftDate accepts a full RFC 3339 timestamp or a bare YYYY-MM-DD day.
func parseShiftDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
