package services

import (
	"context"
	"sync"
	"time"

	"minesafety/model"
	"minesafety/tracker"
)

// MemoryChecklistStore keeps checklists in process memory. It is used when
// CHECKLIST_STORE=memory and enforces the same (owner, day) uniqueness as Firestore.
type MemoryChecklistStore struct {
	mu         sync.Mutex
	checklists map[string]*model.Checklist
}

func NewMemoryChecklistStore() *MemoryChecklistStore {
	return &MemoryChecklistStore{checklists: make(map[string]*model.Checklist)}
}

func (s *MemoryChecklistStore) FindByOwnerAndDateRange(ctx context.Context, owner string, start, end time.Time) (*model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, checklist := range s.checklists {
		if checklist.UserID != owner {
			continue
		}
		if !checklist.Date.Before(start) && checklist.Date.Before(end) {
			return checklist.Clone(), nil
		}
	}
	return nil, nil
}

func (s *MemoryChecklistStore) Create(ctx context.Context, checklist model.Checklist) (*model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := ChecklistDocID(checklist.UserID, checklist.Date)
	if _, ok := s.checklists[id]; ok {
		return nil, tracker.ErrDuplicate
	}
	checklist.ChecklistID = id
	s.checklists[id] = checklist.Clone()
	return checklist.Clone(), nil
}

func (s *MemoryChecklistStore) FindByID(ctx context.Context, id string) (*model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	checklist, ok := s.checklists[id]
	if !ok {
		return nil, nil
	}
	return checklist.Clone(), nil
}

func (s *MemoryChecklistStore) Update(ctx context.Context, id string, mutate func(*model.Checklist) error) (*model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.checklists[id]
	if !ok {
		return nil, tracker.ErrChecklistNotFound
	}
	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	s.checklists[id] = working
	return working.Clone(), nil
}

func (s *MemoryChecklistStore) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Checklist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Checklist
	for _, checklist := range s.checklists {
		if checklist.CreatedAt.Before(start) || checklist.CreatedAt.After(end) {
			continue
		}
		out = append(out, *checklist.Clone())
	}
	return out, nil
}
