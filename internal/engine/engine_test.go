package engine

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/storage"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// mockStorage records every append in order. Only the methods the engine
// touches are meaningful; list methods return what was recorded.
type mockStorage struct {
	addReminderErr error
	reminders      []model.Reminder
	todos          []model.Todo
	notes          []model.Note
	activity       []model.ActivityEntry
}

func (m *mockStorage) AddReminder(_ context.Context, r *model.Reminder) error {
	if m.addReminderErr != nil {
		return m.addReminderErr
	}
	m.reminders = append(m.reminders, *r)
	return nil
}

func (m *mockStorage) ListReminders(context.Context) ([]model.Reminder, error) {
	return m.reminders, nil
}

func (m *mockStorage) AddTodo(_ context.Context, t *model.Todo) error {
	m.todos = append(m.todos, *t)
	return nil
}

func (m *mockStorage) ListTodos(context.Context) ([]model.Todo, error) {
	return m.todos, nil
}

func (m *mockStorage) AddNote(_ context.Context, n *model.Note) error {
	m.notes = append(m.notes, *n)
	return nil
}

func (m *mockStorage) ListNotes(context.Context) ([]model.Note, error) {
	return m.notes, nil
}

func (m *mockStorage) AppendActivity(_ context.Context, e *model.ActivityEntry) error {
	m.activity = append(m.activity, *e)
	return nil
}

func (m *mockStorage) ListActivity(context.Context, int) ([]model.ActivityEntry, error) {
	return m.activity, nil
}

func (m *mockStorage) Migrate(context.Context) error { return nil }
func (m *mockStorage) Close() error                  { return nil }

func newTestEngine(store *mockStorage) *Engine {
	return New(store, FixedClock(testNow))
}

func TestProcessMessageReminder(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	batch, err := eng.ProcessMessage(context.Background(), "Call mom tomorrow at 5pm")
	require.NoError(t, err)

	require.Len(t, batch.Reminders, 1)
	assert.Empty(t, batch.Todos)
	assert.Empty(t, batch.Notes)

	r := batch.Reminders[0]
	assert.Equal(t, "Call mom", r.Title)
	assert.Equal(t, "2025-03-11", r.Date)
	assert.Equal(t, "17:00", r.Time)
	assert.Equal(t, model.PriorityMedium, r.Priority)

	require.Len(t, store.reminders, 1)
	require.Len(t, store.activity, 1)
	assert.Equal(t, model.ActivityReminder, store.activity[0].Type)
	assert.Equal(t, "Reminder: Call mom", store.activity[0].Summary)
}

func TestProcessMessageTodo(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	batch, err := eng.ProcessMessage(context.Background(), "Add complete the project to do list for tomorrow")
	require.NoError(t, err)

	require.Len(t, batch.Todos, 1)
	assert.Empty(t, batch.Reminders)

	todo := batch.Todos[0]
	assert.Equal(t, "complete the project", todo.Title)
	assert.Equal(t, model.ScopeDay, todo.Scope)
	assert.Equal(t, "2025-03-11", todo.DueDate)

	require.Len(t, store.activity, 1)
	assert.Equal(t, model.ActivityTodo, store.activity[0].Type)
}

func TestProcessMessageNotes(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	text := "Generate notes Revenue grew this quarter. Costs stayed flat. The outlook is stable."
	batch, err := eng.ProcessMessage(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, batch.Notes, 1)
	note := batch.Notes[0]
	assert.Equal(t, model.NoteGenerated, note.Type)
	assert.Equal(t, text, note.Content)
	assert.Contains(t, note.Title, "Note: ")
	assert.Equal(t, []string{
		"Generate notes Revenue grew this quarter",
		"Costs stayed flat",
		"The outlook is stable",
	}, note.KeyPoints)
}

func TestProcessMessageUnmatchedLogsRaw(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	batch, err := eng.ProcessMessage(context.Background(), "hello")
	require.NoError(t, err)

	assert.True(t, batch.Empty())
	assert.Empty(t, store.reminders)
	assert.Empty(t, store.todos)
	assert.Empty(t, store.notes)

	require.Len(t, store.activity, 1)
	assert.Equal(t, model.ActivityMessage, store.activity[0].Type)
	assert.Equal(t, "hello", store.activity[0].Summary)
	assert.Equal(t, "hello", store.activity[0].Payload["raw"])
}

func TestProcessMessageBlank(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	batch, err := eng.ProcessMessage(context.Background(), "   ")
	require.NoError(t, err)
	assert.True(t, batch.Empty())
	assert.Empty(t, store.activity)
}

func TestProcessMessageMultibyteTodoTitle(t *testing.T) {
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "scribe.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	eng := New(store, FixedClock(testNow))

	// A multibyte title within the rune cap must survive the full path to
	// the store, even though its byte length exceeds 200.
	text := "add " + strings.Repeat("é", 150) + " to the todo list for today"
	batch, err := eng.ProcessMessage(context.Background(), text)
	require.NoError(t, err)

	require.Len(t, batch.Todos, 1)
	assert.Equal(t, strings.Repeat("é", 150)+" to", batch.Todos[0].Title)
	assert.Equal(t, "2025-03-10", batch.Todos[0].DueDate)

	stored, err := store.ListTodos(context.Background())
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, batch.Todos[0].Title, stored[0].Title)
}

func TestProcessMessageStorageError(t *testing.T) {
	boom := errors.New("disk full")
	store := &mockStorage{addReminderErr: boom}
	eng := newTestEngine(store)

	_, err := eng.ProcessMessage(context.Background(), "Call mom tomorrow at 5pm")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestProcessDocumentSegments(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	content := "Team meeting on 15 jan. Finish the slides. The summary covers revenue."
	batch, err := eng.ProcessDocument(context.Background(), content, "minutes.txt")
	require.NoError(t, err)

	require.NotNil(t, batch.Document)
	assert.Equal(t, "minutes.txt", batch.Document.Source)
	assert.Equal(t, content, batch.Document.Excerpt)

	require.Len(t, batch.Reminders, 1)
	assert.Equal(t, "Team meeting", batch.Reminders[0].Title)
	assert.Equal(t, "2025-01-15", batch.Reminders[0].Date)

	require.Len(t, batch.Todos, 1)
	assert.Equal(t, "Finish the slides", batch.Todos[0].Title)
	assert.Equal(t, "2025-03-10", batch.Todos[0].DueDate)

	require.Len(t, batch.Notes, 1)
	assert.Equal(t, "The summary covers revenue", batch.Notes[0].Content)

	// One entry per record plus the document entry, document last.
	require.Len(t, store.activity, 4)
	assert.Equal(t, model.ActivityDocument, store.activity[3].Type)
	assert.Equal(t, "Document: minutes.txt", store.activity[3].Summary)
}

func TestProcessDocumentSingleUnit(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	batch, err := eng.ProcessDocument(context.Background(), "Call mom tomorrow at 5pm", "paste")
	require.NoError(t, err)

	require.Len(t, batch.Reminders, 1)
	assert.Equal(t, "Call mom", batch.Reminders[0].Title)

	// Reminder entry plus the document entry.
	require.Len(t, store.activity, 2)
	assert.Equal(t, model.ActivityDocument, store.activity[1].Type)
}

func TestProcessDocumentEmpty(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	batch, err := eng.ProcessDocument(context.Background(), "", "empty.txt")
	require.NoError(t, err)
	assert.True(t, batch.Empty())

	// The document entry is appended even when nothing was extracted.
	require.Len(t, store.activity, 1)
	assert.Equal(t, model.ActivityDocument, store.activity[0].Type)
}

func TestProcessDocumentExcerptTruncated(t *testing.T) {
	store := &mockStorage{}
	cfg := DefaultConfig()
	cfg.ExcerptLen = 10
	eng := NewWithConfig(store, FixedClock(testNow), cfg)

	batch, err := eng.ProcessDocument(context.Background(), "0123456789abcdef", "long.txt")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", batch.Document.Excerpt)
}

func TestImportSheet(t *testing.T) {
	store := &mockStorage{}
	eng := newTestEngine(store)

	sh := &model.Sheet{
		Name:    "Birthdays",
		Headers: []string{"Name", "DOB"},
		Rows: [][]string{
			{"alice", "15/03/1990"},
			{"Bob", "2000-07-04"},
			{"Eve", "no date"},
		},
	}

	batch, err := eng.ImportSheet(context.Background(), sh)
	require.NoError(t, err)

	require.Len(t, batch.Reminders, 2)
	assert.Equal(t, "Alice's birthday", batch.Reminders[0].Title)
	assert.Equal(t, "03-15", batch.Reminders[0].Date)
	assert.Equal(t, model.RecurrenceYearly, batch.Reminders[0].Recurring)
	assert.Equal(t, "excel", batch.Reminders[0].Source)

	require.Len(t, store.reminders, 2)
	require.Len(t, store.activity, 3)
	assert.Equal(t, model.ActivityReminder, store.activity[0].Type)
	assert.Equal(t, model.ActivityReminder, store.activity[1].Type)
	assert.Equal(t, model.ActivityDocument, store.activity[2].Type)
	assert.Equal(t, "Spreadsheet: Birthdays (2 reminders)", store.activity[2].Summary)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "abc", truncate("abc", 0))
	assert.Equal(t, "héll", truncate("héllo", 4))
}
