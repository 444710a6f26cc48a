// Package engine implements the capture dispatcher: it routes raw input
// through classification and extraction, appends resulting records to the
// stores, and reports a transient detected-items batch per invocation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/mvasher/scribe/internal/classify"
	"github.com/mvasher/scribe/internal/extract"
	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/service"
	"github.com/mvasher/scribe/internal/sheet"
)

// Heuristics applied when no explicit intent phrase matched.
var (
	todoHintRe  = regexp.MustCompile(`\b(to\s*-?do|todo)\b`)
	todoVerbRe  = regexp.MustCompile(`\b(complete|finish|do|prepare|submit)\b`)
	notesHintRe = regexp.MustCompile(`\b(generate\s+)?(notes|key\s+points|summarize|summary)\b`)
)

// Config holds configuration options for the capture engine.
type Config struct {
	// MessageKeyPoints caps note key points for whole-message notes.
	MessageKeyPoints int
	// SegmentKeyPoints caps note key points for document segments.
	SegmentKeyPoints int
	// TitleMaxLen caps to-do titles.
	TitleMaxLen int
	// NoteTitleLen caps the text excerpt used as a note title.
	NoteTitleLen int
	// ExcerptLen caps the document excerpt carried on a batch.
	ExcerptLen int
	// SummaryLen caps raw-message activity summaries.
	SummaryLen int
	// NotesMinLen is the minimum text length for the notes keyword heuristic.
	NotesMinLen int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MessageKeyPoints: 6,
		SegmentKeyPoints: 4,
		TitleMaxLen:      200,
		NoteTitleLen:     40,
		ExcerptLen:       500,
		SummaryLen:       80,
		NotesMinLen:      10,
	}
}

// Engine orchestrates classification, extraction, and record emission.
// One invocation runs synchronously to completion; the engine holds no
// mutable state between invocations.
type Engine struct {
	storage service.Storage
	clock   Clock
	config  Config
}

// New creates a capture engine with the default configuration.
func New(storage service.Storage, clock Clock) *Engine {
	return NewWithConfig(storage, clock, DefaultConfig())
}

// NewWithConfig creates a capture engine with custom configuration.
func NewWithConfig(storage service.Storage, clock Clock, config Config) *Engine {
	return &Engine{storage: storage, clock: clock, config: config}
}

// ProcessMessage runs one chat message through the intent cascade. A message
// that yields no structured record still produces a raw activity log entry.
func (e *Engine) ProcessMessage(ctx context.Context, text string) (*model.DetectedBatch, error) {
	now := e.clock.Now()
	batch := &model.DetectedBatch{}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return batch, nil
	}

	emitted, err := e.processUnit(ctx, trimmed, now, batch)
	if err != nil {
		return nil, err
	}
	if !emitted {
		entry := &model.ActivityEntry{
			Type:    model.ActivityMessage,
			Summary: truncate(trimmed, e.config.SummaryLen),
			Payload: map[string]string{"raw": truncate(trimmed, e.config.ExcerptLen)},
		}
		if err := e.storage.AppendActivity(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to log message: %w", err)
		}
	}

	return batch, nil
}

// ProcessDocument segments pasted or uploaded text. Documents with more than
// one sentence are classified per unit; anything shorter is handled like a
// single message. One document-level activity entry is always appended.
func (e *Engine) ProcessDocument(ctx context.Context, content, source string) (*model.DetectedBatch, error) {
	now := e.clock.Now()
	batch := &model.DetectedBatch{
		Document: &model.DocumentInfo{
			Source:  source,
			Excerpt: truncate(content, e.config.ExcerptLen),
		},
	}

	units := extract.Sentences(content)
	if len(units) > 1 {
		for _, unit := range units {
			if err := e.processSegment(ctx, unit, now, batch); err != nil {
				return nil, err
			}
		}
	} else if strings.TrimSpace(content) != "" {
		if _, err := e.processUnit(ctx, strings.TrimSpace(content), now, batch); err != nil {
			return nil, err
		}
	}

	entry := &model.ActivityEntry{
		Type:    model.ActivityDocument,
		Summary: "Document: " + source,
		Payload: map[string]string{"source": source},
	}
	if err := e.storage.AppendActivity(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to log document: %w", err)
	}

	slog.Info("Processed document",
		"source", source,
		"segments", len(units),
		"reminders", len(batch.Reminders),
		"todos", len(batch.Todos),
		"notes", len(batch.Notes))

	return batch, nil
}

// ImportSheet emits one reminder per valid row of a recurring-date
// spreadsheet. Spreadsheet input bypasses classification entirely.
func (e *Engine) ImportSheet(ctx context.Context, sh *model.Sheet) (*model.DetectedBatch, error) {
	batch := &model.DetectedBatch{
		Document: &model.DocumentInfo{Source: sh.Name},
	}

	for _, r := range sheet.ExtractBirthdays(sh) {
		reminder := r
		if err := e.storage.AddReminder(ctx, &reminder); err != nil {
			return nil, fmt.Errorf("failed to save reminder: %w", err)
		}
		batch.Reminders = append(batch.Reminders, reminder)

		entry := &model.ActivityEntry{
			Type:    model.ActivityReminder,
			Summary: "Reminder: " + reminder.Title,
			Payload: map[string]string{"date": reminder.Date, "source": reminder.Source},
		}
		if err := e.storage.AppendActivity(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to log reminder: %w", err)
		}
	}

	entry := &model.ActivityEntry{
		Type:    model.ActivityDocument,
		Summary: fmt.Sprintf("Spreadsheet: %s (%d reminders)", sh.Name, len(batch.Reminders)),
		Payload: map[string]string{"source": sh.Name},
	}
	if err := e.storage.AppendActivity(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to log spreadsheet: %w", err)
	}

	slog.Info("Imported spreadsheet", "sheet", sh.Name, "reminders", len(batch.Reminders))

	return batch, nil
}

// processUnit runs the single-message cascade: reminder first unless the
// intent says otherwise, then to-do, then notes, then one last reminder
// attempt. Reports whether a record was emitted.
func (e *Engine) processUnit(ctx context.Context, text string, now time.Time, batch *model.DetectedBatch) (bool, error) {
	lower := strings.ToLower(text)
	intent := classify.Intent(text)

	if intent == model.IntentReminder || (intent != model.IntentTodo && intent != model.IntentNotes) {
		if r := extract.Reminder(text, now); r != nil {
			if err := e.emitReminder(ctx, r, batch); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	if intent == model.IntentTodo || todoHintRe.MatchString(lower) || todoVerbRe.MatchString(lower) {
		fields := extract.TodoFields(text, now)
		title := truncate(fields.Title, e.config.TitleMaxLen)
		if title != "" && title != extract.PlaceholderTitle {
			todo := model.Todo{Title: title, Scope: fields.Scope, DueDate: fields.DueDate}
			if err := e.emitTodo(ctx, &todo, batch); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	if intent == model.IntentNotes || (notesHintRe.MatchString(lower) && len(text) > e.config.NotesMinLen) {
		note := e.buildNote(text, "Note: ", e.config.MessageKeyPoints)
		if err := e.emitNote(ctx, note, batch); err != nil {
			return false, err
		}
		return true, nil
	}

	if r := extract.Reminder(text, now); r != nil {
		if err := e.emitReminder(ctx, r, batch); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

// processSegment dispatches one classified document sentence straight to its
// extractor; unextractable segments are skipped, never errors.
func (e *Engine) processSegment(ctx context.Context, unit string, now time.Time, batch *model.DetectedBatch) error {
	switch classify.Sentence(unit, now) {
	case model.IntentReminder:
		if r := extract.Reminder(unit, now); r != nil {
			return e.emitReminder(ctx, r, batch)
		}
	case model.IntentTodo:
		fields := extract.TodoFields(unit, now)
		title := fields.Title
		if title == extract.PlaceholderTitle {
			title = truncate(unit, 80)
		}
		todo := model.Todo{
			Title:   truncate(title, e.config.TitleMaxLen),
			Scope:   fields.Scope,
			DueDate: fields.DueDate,
		}
		return e.emitTodo(ctx, &todo, batch)
	case model.IntentNotes:
		return e.emitNote(ctx, e.buildNote(unit, "", e.config.SegmentKeyPoints), batch)
	}
	return nil
}

func (e *Engine) buildNote(text, titlePrefix string, maxPoints int) *model.Note {
	keyPoints := extract.KeyPoints(text, maxPoints)
	if len(keyPoints) == 0 {
		keyPoints = []string{text}
	}
	return &model.Note{
		Title:     titlePrefix + truncate(text, e.config.NoteTitleLen) + "…",
		Content:   text,
		Type:      model.NoteGenerated,
		KeyPoints: keyPoints,
	}
}

func (e *Engine) emitReminder(ctx context.Context, r *model.Reminder, batch *model.DetectedBatch) error {
	if err := e.storage.AddReminder(ctx, r); err != nil {
		return fmt.Errorf("failed to save reminder: %w", err)
	}
	batch.Reminders = append(batch.Reminders, *r)

	entry := &model.ActivityEntry{
		Type:    model.ActivityReminder,
		Summary: "Reminder: " + r.Title,
		Payload: map[string]string{"date": r.Date, "time": r.Time, "priority": string(r.Priority)},
	}
	if err := e.storage.AppendActivity(ctx, entry); err != nil {
		return fmt.Errorf("failed to log reminder: %w", err)
	}
	return nil
}

func (e *Engine) emitTodo(ctx context.Context, t *model.Todo, batch *model.DetectedBatch) error {
	if err := e.storage.AddTodo(ctx, t); err != nil {
		return fmt.Errorf("failed to save todo: %w", err)
	}
	batch.Todos = append(batch.Todos, *t)

	entry := &model.ActivityEntry{
		Type:    model.ActivityTodo,
		Summary: fmt.Sprintf("To-do: %s (%s)", t.Title, t.Scope),
		Payload: map[string]string{"due_date": t.DueDate, "scope": string(t.Scope)},
	}
	if err := e.storage.AppendActivity(ctx, entry); err != nil {
		return fmt.Errorf("failed to log todo: %w", err)
	}
	return nil
}

func (e *Engine) emitNote(ctx context.Context, n *model.Note, batch *model.DetectedBatch) error {
	if err := e.storage.AddNote(ctx, n); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}
	batch.Notes = append(batch.Notes, *n)

	entry := &model.ActivityEntry{
		Type:    model.ActivityNote,
		Summary: "Notes generated",
		Payload: map[string]string{"title": n.Title},
	}
	if err := e.storage.AppendActivity(ctx, entry); err != nil {
		return fmt.Errorf("failed to log note: %w", err)
	}
	return nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
