package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minesafety/model"
	"minesafety/tracker"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ChecklistDocID is the document id for an owner's checklist on day. Using it
// as the key makes (owner, day) unique in the collection.
func ChecklistDocID(owner string, day time.Time) string {
	return owner + "_" + day.Format("20060102")
}

type FirestoreChecklistStore struct {
	client *firestore.Client
}

func NewFirestoreChecklistStore(client *firestore.Client) *FirestoreChecklistStore {
	return &FirestoreChecklistStore{client: client}
}

func (s *FirestoreChecklistStore) collection() *firestore.CollectionRef {
	return s.client.Collection(model.Checklist{}.CollectionName())
}

func decodeChecklist(doc *firestore.DocumentSnapshot) (*model.Checklist, error) {
	var checklist model.Checklist
	if err := doc.DataTo(&checklist); err != nil {
		return nil, fmt.Errorf("decode checklist %s: %w", doc.Ref.ID, err)
	}
	checklist.ChecklistID = doc.Ref.ID
	return &checklist, nil
}

func (s *FirestoreChecklistStore) FindByOwnerAndDateRange(ctx context.Context, owner string, start, end time.Time) (*model.Checklist, error) {
	iter := s.collection().
		Where("user", "==", owner).
		Where("date", ">=", start).
		Where("date", "<", end).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeChecklist(doc)
}

func (s *FirestoreChecklistStore) Create(ctx context.Context, checklist model.Checklist) (*model.Checklist, error) {
	ref := s.collection().Doc(ChecklistDocID(checklist.UserID, checklist.Date))
	if ref == nil {
		return nil, fmt.Errorf("invalid checklist owner id %q", checklist.UserID)
	}
	if _, err := ref.Create(ctx, checklist); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, tracker.ErrDuplicate
		}
		return nil, err
	}
	checklist.ChecklistID = ref.ID
	return &checklist, nil
}

func (s *FirestoreChecklistStore) FindByID(ctx context.Context, id string) (*model.Checklist, error) {
	ref := s.collection().Doc(id)
	if ref == nil {
		return nil, nil
	}
	doc, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return decodeChecklist(doc)
}

// Update runs mutate inside a Firestore transaction, so concurrent toggles of
// the same checklist are serialized by the store.
func (s *FirestoreChecklistStore) Update(ctx context.Context, id string, mutate func(*model.Checklist) error) (*model.Checklist, error) {
	ref := s.collection().Doc(id)
	if ref == nil {
		return nil, tracker.ErrChecklistNotFound
	}

	var updated *model.Checklist
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return tracker.ErrChecklistNotFound
			}
			return err
		}
		checklist, err := decodeChecklist(doc)
		if err != nil {
			return err
		}
		if err := mutate(checklist); err != nil {
			return err
		}
		updated = checklist
		return tx.Set(ref, checklist)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *FirestoreChecklistStore) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Checklist, error) {
	iter := s.collection().
		Where("createdAt", ">=", start).
		Where("createdAt", "<=", end).
		Documents(ctx)
	defer iter.Stop()

	var checklists []model.Checklist
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		checklist, err := decodeChecklist(doc)
		if err != nil {
			return nil, err
		}
		checklists = append(checklists, *checklist)
	}
	return checklists, nil
}
