package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvasher/scribe/internal/model"
)

func TestRenderBatch(t *testing.T) {
	batch := &model.DetectedBatch{
		Document: &model.DocumentInfo{Source: "minutes.txt"},
		Reminders: []model.Reminder{
			{Title: "Call mom", Date: "2025-03-11", Time: "17:00"},
			{Title: "Alice's birthday", Date: "03-15", Recurring: model.RecurrenceYearly},
		},
		Todos: []model.Todo{{Title: "Finish the slides", Scope: model.ScopeDay, DueDate: "2025-03-10"}},
		Notes: []model.Note{{Title: "Note: quarterly review…", KeyPoints: []string{"a", "b"}}},
	}

	out := RenderBatch(batch)

	assert.Contains(t, out, "Detected 2 reminder(s), 1 to-do(s), 1 note(s)")
	assert.Contains(t, out, "minutes.txt")
	assert.Contains(t, out, "Call mom")
	assert.Contains(t, out, "17:00")
	assert.Contains(t, out, "(yearly)")
	assert.Contains(t, out, "due 2025-03-10")
	assert.Contains(t, out, "2 key points")
}

func TestRenderBatchEmpty(t *testing.T) {
	out := RenderBatch(&model.DetectedBatch{})
	assert.Contains(t, out, "No reminders, to-dos, or notes detected.")
	assert.Equal(t, out, RenderBatch(nil))
}
