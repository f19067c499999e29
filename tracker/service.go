package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"minesafety/model"

	"github.com/google/uuid"
)

// UserDirectory resolves users by id. A missing user is (nil, nil).
type UserDirectory interface {
	FindUserByID(ctx context.Context, id string) (*model.User, error)
}

// ChecklistStore persists checklists. Lookups return (nil, nil) when nothing matches.
type ChecklistStore interface {
	FindByOwnerAndDateRange(ctx context.Context, owner string, start, end time.Time) (*model.Checklist, error)
	// Create returns ErrDuplicate when the owner already has a checklist for that date.
	Create(ctx context.Context, checklist model.Checklist) (*model.Checklist, error)
	// Update loads the checklist, applies mutate and writes it back atomically.
	// A missing checklist yields ErrChecklistNotFound; an error from mutate aborts the write.
	Update(ctx context.Context, id string, mutate func(*model.Checklist) error) (*model.Checklist, error)
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Checklist, error)
}

type Service struct {
	users  UserDirectory
	store  ChecklistStore
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

type Option func(*Service)

// WithClock replaces time.Now. The location of the returned times decides
// where a calendar day starts.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(users UserDirectory, store ChecklistStore, opts ...Option) *Service {
	s := &Service{
		users:  users,
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CanAccess reports whether p may read or change checklists owned by ownerID.
func CanAccess(p model.Principal, ownerID string) bool {
	return p.UserID == ownerID || p.Oversees()
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GetOrCreateDailyChecklist returns today's checklist for targetUserID, creating it
// from the user's role template on first read. It also returns the user's current role.
func (s *Service) GetOrCreateDailyChecklist(ctx context.Context, p model.Principal, targetUserID string) (*model.Checklist, string, error) {
	if !CanAccess(p, targetUserID) {
		return nil, "", ErrAccessDenied
	}

	user, err := s.users.FindUserByID(ctx, targetUserID)
	if err != nil {
		return nil, "", fmt.Errorf("find user %s: %w", targetUserID, err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	now := s.now()
	today := StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	existing, err := s.store.FindByOwnerAndDateRange(ctx, user.UserID, today, tomorrow)
	if err != nil {
		return nil, "", fmt.Errorf("find today's checklist: %w", err)
	}
	if existing != nil {
		return existing, user.Role, nil
	}

	tpl, recognized := ResolveTemplate(user.Role)
	if !recognized {
		s.logger.Warn("no checklist template for role, using worker template",
			"user_id", user.UserID, "role", user.Role)
	}

	created, err := s.store.Create(ctx, s.materialize(user, tpl, today, now))
	if errors.Is(err, ErrDuplicate) {
		// A concurrent request created today's checklist first.
		winner, findErr := s.store.FindByOwnerAndDateRange(ctx, user.UserID, today, tomorrow)
		if findErr != nil {
			return nil, "", fmt.Errorf("re-read checklist after duplicate insert: %w", findErr)
		}
		if winner == nil {
			return nil, "", fmt.Errorf("checklist for %s missing after duplicate insert", user.UserID)
		}
		s.logger.Info("checklist created concurrently, returning existing",
			"user_id", user.UserID, "checklist_id", winner.ChecklistID)
		return winner, user.Role, nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("create checklist: %w", err)
	}

	s.logger.Info("daily checklist created",
		"user_id", user.UserID, "role", user.Role, "checklist_id", created.ChecklistID, "items", len(created.Items))
	return created, user.Role, nil
}

func (s *Service) materialize(user *model.User, tpl Template, day, now time.Time) model.Checklist {
	entries := tpl.Items()
	items := make([]model.ChecklistItem, len(entries))
	for i, entry := range entries {
		items[i] = model.ChecklistItem{
			ItemID:   s.newID(),
			Task:     entry.Task,
			Category: entry.Category,
		}
	}
	return model.Checklist{
		UserID:    user.UserID,
		Role:      user.Role,
		Date:      day,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ToggleChecklistItem flips one item's completion and reports the new state.
func (s *Service) ToggleChecklistItem(ctx context.Context, p model.Principal, checklistID, itemID string) (*model.Checklist, bool, error) {
	now := s.now()
	var completed bool

	updated, err := s.store.Update(ctx, checklistID, func(cl *model.Checklist) error {
		if !CanAccess(p, cl.UserID) {
			return ErrAccessDenied
		}
		idx := cl.ItemIndex(itemID)
		if idx < 0 {
			return ErrItemNotFound
		}

		item := &cl.Items[idx]
		item.Completed = !item.Completed
		if item.Completed {
			at := now
			item.CompletedAt = &at
		} else {
			item.CompletedAt = nil
		}
		cl.UpdatedAt = now
		completed = item.Completed
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAccessDenied) || errors.Is(err, ErrNotFound) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("toggle item %s on checklist %s: %w", itemID, checklistID, err)
	}
	return updated, completed, nil
}

func ToggleMessage(completed bool) string {
	if completed {
		return "Task marked as completed"
	}
	return "Task marked as incomplete"
}
