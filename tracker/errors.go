package tracker

import (
	"errors"
	"fmt"
)

var (
	ErrAccessDenied = errors.New("access denied")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrChecklistNotFound = fmt.Errorf("checklist %w", ErrNotFound)
	ErrItemNotFound      = fmt.Errorf("checklist item %w", ErrNotFound)

	// ErrDuplicate is returned by a ChecklistStore when a checklist for the
	// same owner and day already exists.
	ErrDuplicate = errors.New("checklist already exists for owner and day")
)
