package classify

import (
	"strings"
	"time"

	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/parse"
)

// Keyword sets for per-sentence classification, matched as substrings of the
// lowered sentence.
var (
	reminderWords = []string{"remind", "reminder", "birthday", "anniversary", "meeting", "appointment", "on", "by", "before", "due", "at"}
	todoWords     = []string{"complete", "finish", "do", "prepare", "submit", "to do", "todo", "task"}
	noteWords     = []string{"note", "key point", "summary", "summarize"}
)

// features are the predicates a sentence rule can consult.
type features struct {
	hasDate         bool
	hasReminderWord bool
	hasTodoWord     bool
	hasNoteWord     bool
}

type sentenceRule struct {
	applies func(features) bool
	name    string
	intent  model.Intent
}

// Per-sentence rules, looser than the whole-message set. Dates without task
// verbs default to reminder-like events (birthdays, anniversaries); anything
// entirely unmatched falls through to todo.
var sentenceRules = []sentenceRule{
	{name: "date with reminder word", intent: model.IntentReminder,
		applies: func(f features) bool { return f.hasDate && f.hasReminderWord }},
	{name: "date without task verb", intent: model.IntentReminder,
		applies: func(f features) bool { return f.hasDate && !f.hasTodoWord }},
	{name: "task verb", intent: model.IntentTodo,
		applies: func(f features) bool { return f.hasTodoWord }},
	{name: "notes word", intent: model.IntentNotes,
		applies: func(f features) bool { return f.hasNoteWord }},
	{name: "bare date", intent: model.IntentReminder,
		applies: func(f features) bool { return f.hasDate }},
	{name: "default", intent: model.IntentTodo,
		applies: func(features) bool { return true }},
}

// Sentence classifies one segmented document sentence. Blank input yields
// IntentNone, which callers treat as "skip this unit".
func Sentence(text string, now time.Time) model.Intent {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.IntentNone
	}
	lower := strings.ToLower(trimmed)

	f := features{
		hasDate:         parse.HasDate(trimmed, now),
		hasReminderWord: containsAny(lower, reminderWords),
		hasTodoWord:     containsAny(lower, todoWords),
		hasNoteWord:     containsAny(lower, noteWords),
	}

	for _, rule := range sentenceRules {
		if rule.applies(f) {
			return rule.intent
		}
	}

	return model.IntentNone
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
