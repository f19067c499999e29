package checklist

import (
	"fmt"
	"net/http"
	"time"

	"minesafety/dto"
	"minesafety/tracker"

	"github.com/gin-gonic/gin"
)

var statsFailure = failure{
	internal: "Server error",
}

// GetChecklistStats reports compliance per (day, role). Without query
// parameters the window is the trailing seven days.
func GetChecklistStats(c *gin.Context, svc *tracker.Service) {
	var query dto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, fmt.Errorf("%w: %v", tracker.ErrInvalidInput, err), statsFailure)
		return
	}

	start, end, err := statsWindow(svc, query)
	if err != nil {
		respondError(c, err, statsFailure)
		return
	}

	stats, err := svc.ComputeComplianceStats(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err, statsFailure)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func statsWindow(svc *tracker.Service, query dto.StatsQuery) (time.Time, time.Time, error) {
	start, end := svc.StatsWindow()
	loc := svc.Location()

	if query.Start != "" {
		day, err := time.ParseInLocation("2006-01-02", query.Start, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start %q", tracker.ErrInvalidInput, query.Start)
		}
		start = day
	}
	if query.End != "" {
		day, err := time.ParseInLocation("2006-01-02", query.End, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end %q", tracker.ErrInvalidInput, query.End)
		}
		end = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return start, end, nil
}
