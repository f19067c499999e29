package scheduler

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"minesafety/model"
	"minesafety/services"
	"minesafety/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type oneUser struct{ user model.User }

func (o oneUser) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	if id != o.user.UserID {
		return nil, nil
	}
	u := o.user
	return &u, nil
}

func TestComplianceDigestJob(t *testing.T) {
	now := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	svc := tracker.NewService(oneUser{model.User{UserID: "w1", Role: model.RoleWorker}}, services.NewMemoryChecklistStore(),
		tracker.WithClock(func() time.Time { return now }))

	p := model.Principal{UserID: "w1", Role: model.RoleWorker}
	checklist, _, err := svc.GetOrCreateDailyChecklist(context.Background(), p, "w1")
	require.NoError(t, err)
	_, _, err = svc.ToggleChecklistItem(context.Background(), p, checklist.ChecklistID, checklist.Items[0].ItemID)
	require.NoError(t, err)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	require.NoError(t, ComplianceDigestJob(context.Background(), svc, logger))

	out := buf.String()
	assert.Contains(t, out, "groups=1")
	assert.Contains(t, out, "date=2026-03-10")
	assert.Contains(t, out, "role=worker")
	assert.Contains(t, out, "total_items=10")
	assert.Contains(t, out, "completed_items=1")
	assert.Contains(t, out, "compliance_rate=10")
}

func TestStartSchedulerRejectsBadSpec(t *testing.T) {
	svc := tracker.NewService(oneUser{}, services.NewMemoryChecklistStore())

	_, err := StartScheduler("every now and then", svc)
	assert.Error(t, err)

	c, err := StartScheduler("0 5 0 * * *", svc)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	c.Stop()
}
