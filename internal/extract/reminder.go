// Package extract turns gated text into typed records: reminder fields,
// to-do fields, key-point summaries, and document segments. Extractors are
// total: failing a gate yields a nil/empty result, never an error.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/parse"
)

const monthAlt = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// Hint keywords that gate reminder extraction, matched as substrings.
var reminderHints = []string{"remind", "reminder", "on", "by", "before", "due", "at", "meeting", "call", "submit", "deadline", "appointment"}

var (
	// First matched date phrase is removed from the title before the time phrase.
	datePhraseRe = regexp.MustCompile(`(?i)\b(today|tomorrow|\d{1,2}\s*(` + monthAlt + `)[a-z]*\s*\d{0,4}|\d{4}-\d{2}-\d{2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	timePhraseRe = regexp.MustCompile(`(?i)\b(\d{1,2}(?::\d{2})?\s*(am|pm)?)\b`)

	connectiveRe = regexp.MustCompile(`(?i)\b(remind me to|reminder|on|by|before|due|at)\b`)

	spacesRe = regexp.MustCompile(`\s+`)
)

// Reminder extracts a reminder record from one piece of text, resolved
// against now. It returns nil unless the text carries a reminder hint
// keyword or something date-like.
func Reminder(text string, now time.Time) *model.Reminder {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	hasHint := false
	for _, hint := range reminderHints {
		if strings.Contains(lower, hint) {
			hasHint = true
			break
		}
	}
	if !hasHint && !parse.HasDate(trimmed, now) {
		return nil
	}

	date, ok := parse.Date(trimmed, now)
	if !ok {
		date = now.Format(parse.ISODate)
	}
	clock, _ := parse.Time(trimmed)

	title := trimmed
	if phrase := datePhraseRe.FindString(title); phrase != "" {
		title = strings.Replace(title, phrase, "", 1)
	}
	if phrase := timePhraseRe.FindString(title); phrase != "" {
		title = strings.Replace(title, phrase, "", 1)
	}
	title = connectiveRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(spacesRe.ReplaceAllString(title, " "))
	if title == "" {
		title = "Reminder " + date
		if clock != "" {
			title += " " + clock
		}
	}

	return &model.Reminder{
		Title:     title,
		Date:      date,
		Time:      clock,
		Priority:  parse.Priority(trimmed),
		Recurring: model.RecurrenceNone,
	}
}
