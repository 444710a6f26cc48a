package parse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/mvasher/scribe/internal/model"
)

// Rewrite steps applied by Title, in order: shared filler first, then the
// target-kind noise words, then whitespace collapse.
var (
	fillerRe = regexp.MustCompile(`\b(my|me|please|kindly|don't forget to|remember to|add|set|create)\b`)

	reminderNoiseRe = regexp.MustCompile(`\b(on|at|by|before|after|tomorrow|today|\d{1,2}/\d{1,2}/\d{2,4})\b`)
	todoNoiseRe     = regexp.MustCompile(`\b(to the to do list|to do list|task|todo|list)\b`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Title strips politeness filler and, per target kind, connective/date words
// (reminders) or list-phrase words (to-dos) from text, producing a
// human-readable title. It never fails; the worst case is an empty string,
// which callers must re-check. The record extractors assemble their titles
// with their own strip sequences; Title is a standalone normalizer for
// callers that want kind-aware cleanup of free text.
func Title(text string, kind model.Intent) string {
	cleaned := strings.ToLower(text)

	cleaned = fillerRe.ReplaceAllString(cleaned, "")

	switch kind {
	case model.IntentReminder:
		cleaned = reminderNoiseRe.ReplaceAllString(cleaned, "")
	case model.IntentTodo:
		cleaned = todoNoiseRe.ReplaceAllString(cleaned, "")
	}

	cleaned = strings.TrimSpace(whitespaceRe.ReplaceAllString(cleaned, " "))

	return Capitalize(cleaned)
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
