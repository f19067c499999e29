package tracker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"minesafety/model"
)

const statsDayLayout = "2006-01-02"

// DefaultStatsWindow is how far back ComplianceStats looks when no range is given.
const DefaultStatsWindow = 7 * 24 * time.Hour

type ComplianceStat struct {
	Date           string  `json:"date"`
	Role           string  `json:"role"`
	TotalItems     int     `json:"totalItems"`
	CompletedItems int     `json:"completedItems"`
	ComplianceRate float64 `json:"complianceRate"`
}

// StatsWindow returns the trailing window ending now.
func (s *Service) StatsWindow() (time.Time, time.Time) {
	end := s.now()
	return end.Add(-DefaultStatsWindow), end
}

// Location is the time zone calendar days are cut in.
func (s *Service) Location() *time.Location {
	return s.now().Location()
}

// ComputeComplianceStats aggregates item completion per (creation day, role)
// over checklists created in [start, end].
func (s *Service) ComputeComplianceStats(ctx context.Context, start, end time.Time) ([]ComplianceStat, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: window start %s is after end %s", ErrInvalidInput,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	checklists, err := s.store.ListCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list checklists: %w", err)
	}
	return AggregateCompliance(checklists, s.Location()), nil
}

type statKey struct {
	date string
	role string
}

// AggregateCompliance groups every item by its checklist's creation day in loc
// and the role snapshot. Results are sorted by date then role.
func AggregateCompliance(checklists []model.Checklist, loc *time.Location) []ComplianceStat {
	groups := make(map[statKey]*ComplianceStat)
	for _, cl := range checklists {
		key := statKey{date: cl.CreatedAt.In(loc).Format(statsDayLayout), role: cl.Role}
		for _, item := range cl.Items {
			stat, ok := groups[key]
			if !ok {
				stat = &ComplianceStat{Date: key.date, Role: key.role}
				groups[key] = stat
			}
			stat.TotalItems++
			if item.Completed {
				stat.CompletedItems++
			}
		}
	}

	stats := make([]ComplianceStat, 0, len(groups))
	for _, stat := range groups {
		stat.ComplianceRate = 100 * float64(stat.CompletedItems) / float64(stat.TotalItems)
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Date != stats[j].Date {
			return stats[i].Date < stats[j].Date
		}
		return stats[i].Role < stats[j].Role
	})
	return stats
}
