// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/mvasher/scribe/internal/model"
)

// Storage defines the contract for our persistence layer. The capture engine
// only appends; list operations exist for the display commands. Append
// methods assign record identity and creation time on the passed record.
type Storage interface {
	// Reminder operations
	AddReminder(ctx context.Context, reminder *model.Reminder) error
	ListReminders(ctx context.Context) ([]model.Reminder, error)

	// Todo operations
	AddTodo(ctx context.Context, todo *model.Todo) error
	ListTodos(ctx context.Context) ([]model.Todo, error)

	// Note operations
	AddNote(ctx context.Context, note *model.Note) error
	ListNotes(ctx context.Context) ([]model.Note, error)

	// Activity log operations
	AppendActivity(ctx context.Context, entry *model.ActivityEntry) error
	ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
