// scheduler/scheduler.go
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"minesafety/tracker"

	"github.com/robfig/cron/v3"
)

const digestTimeout = time.Minute

// StartScheduler runs the compliance digest on schedule (six fields, seconds first).
func StartScheduler(schedule string, svc *tracker.Service) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), digestTimeout)
		defer cancel()
		if err := ComplianceDigestJob(ctx, svc, slog.Default()); err != nil {
			slog.Error("compliance digest failed", "error", err)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	slog.Info("scheduler started", "schedule", schedule)
	return c, nil
}

// ComplianceDigestJob logs the trailing-week compliance, one line per day and role.
func ComplianceDigestJob(ctx context.Context, svc *tracker.Service, logger *slog.Logger) error {
	start, end := svc.StatsWindow()
	stats, err := svc.ComputeComplianceStats(ctx, start, end)
	if err != nil {
		return err
	}

	logger.Info("compliance digest", "from", start.Format(time.RFC3339), "to", end.Format(time.RFC3339), "groups", len(stats))
	for _, stat := range stats {
		logger.Info("compliance",
			"date", stat.Date,
			"role", stat.Role,
			"total_items", stat.TotalItems,
			"completed_items", stat.CompletedItems,
			"compliance_rate", stat.ComplianceRate,
		)
	}
	return nil
}
