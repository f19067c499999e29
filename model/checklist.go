// model/checklist.go
package model

import (
	"time"
)

type ChecklistItem struct {
	ItemID      string     `firestore:"id" json:"_id"`
	Task        string     `firestore:"task" json:"task"`
	Category    string     `firestore:"category" json:"category"`
	Completed   bool       `firestore:"completed" json:"completed"`
	CompletedAt *time.Time `firestore:"completedAt" json:"completedAt"`
}

// Checklist is one user's safety checklist for one calendar day.
// Items are fixed at creation; only Completed and CompletedAt change afterwards.
type Checklist struct {
	ChecklistID string          `firestore:"-" json:"_id"`
	UserID      string          `firestore:"user" json:"user"`
	Role        string          `firestore:"role" json:"role"`
	Date        time.Time       `firestore:"date" json:"date"`
	Items       []ChecklistItem `firestore:"items" json:"items"`
	CreatedAt   time.Time       `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `firestore:"updatedAt" json:"updatedAt"`
}

func (Checklist) CollectionName() string {
	return "Checklists"
}

// ItemIndex returns the slot of the item with the given id, or -1.
func (c *Checklist) ItemIndex(itemID string) int {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can't alias the item slice or timestamps.
func (c *Checklist) Clone() *Checklist {
	out := *c
	out.Items = make([]ChecklistItem, len(c.Items))
	for i, item := range c.Items {
		if item.CompletedAt != nil {
			t := *item.CompletedAt
			item.CompletedAt = &t
		}
		out.Items[i] = item
	}
	return &out
}
