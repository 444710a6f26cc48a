// Package classify assigns a coarse intent (reminder, todo, notes) to text
// using ordered keyword rule sets. Every rule set is an explicit slice of
// named rules evaluated in fixed order, first match wins, so precedence is
// data rather than control flow.
package classify

import (
	"regexp"
	"strings"

	"github.com/mvasher/scribe/internal/model"
)

type intentRule struct {
	name     string
	intent   model.Intent
	patterns []*regexp.Regexp
}

// Whole-message rules: only strong explicit phrasings match; everything else
// falls through to the dispatcher's heuristic cascade as IntentNone.
var intentRules = []intentRule{
	{
		name:   "explicit reminder phrasing",
		intent: model.IntentReminder,
		patterns: compile(
			`\badd\s+to\s+(the\s+)?reminder\b`,
			`\bremind\s+me\b`,
			`\breminder\s+for\b`,
		),
	},
	{
		name:   "explicit to-do phrasing",
		intent: model.IntentTodo,
		patterns: compile(
			`\badd\s+to\s+(the\s+)?(to\s*-?do|todo)\s*list\b`,
			`\b(to\s*-?do|todo)\s*list\s+for\b`,
			`\badd\s+.*(to\s*-?do|todo)\b`,
		),
	},
	{
		name:   "explicit notes phrasing",
		intent: model.IntentNotes,
		patterns: compile(
			`\bgenerate\s+(key\s+points|notes)\s+(from\s+the\s+)?(given\s+)?document\b`,
			`\bkey\s+points\s+from\s+(the\s+)?document\b`,
			`\bnotes\s+from\s+(the\s+)?document\b`,
			`\bgenerate\s+notes\b`,
			`\bgenerate\s+key\s+points\b`,
		),
	},
}

// Intent detects an explicit intent from strong keyword phrases in one whole
// message. IntentNone means "no explicit phrasing", not "no action".
func Intent(text string) model.Intent {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return model.IntentNone
	}

	for _, rule := range intentRules {
		for _, re := range rule.patterns {
			if re.MatchString(lower) {
				return rule.intent
			}
		}
	}

	return model.IntentNone
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
