package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mvasher/scribe/internal/model"
)

// Validation errors.
var (
	ErrNilContext      = errors.New("context cannot be nil")
	ErrEmptyString     = errors.New("string parameter cannot be empty")
	ErrNilParameter    = errors.New("parameter cannot be nil")
	ErrInvalidReminder = errors.New("invalid reminder")
	ErrInvalidTodo     = errors.New("invalid todo")
	ErrInvalidNote     = errors.New("invalid note")
	ErrInvalidActivity = errors.New("invalid activity entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateReminder(r *model.Reminder) error {
	if r == nil {
		return fmt.Errorf("%w: reminder", ErrNilParameter)
	}
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidReminder)
	}
	// The date invariant: always present, normalized by the extractors.
	if strings.TrimSpace(r.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidReminder)
	}
	return nil
}

func validateTodo(t *model.Todo) error {
	if t == nil {
		return fmt.Errorf("%w: todo", ErrNilParameter)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidTodo)
	}
	// Counted in runes to match the dispatcher's title cap.
	if utf8.RuneCountInString(t.Title) > 200 {
		return fmt.Errorf("%w: title exceeds 200 characters", ErrInvalidTodo)
	}
	return nil
}

func validateNote(n *model.Note) error {
	if n == nil {
		return fmt.Errorf("%w: note", ErrNilParameter)
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidNote)
	}
	return nil
}

func validateActivity(e *model.ActivityEntry) error {
	if e == nil {
		return fmt.Errorf("%w: entry", ErrNilParameter)
	}
	if strings.TrimSpace(string(e.Type)) == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidActivity)
	}
	return nil
}
