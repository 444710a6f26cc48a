package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/parse"
)

// PlaceholderTitle is the sentinel a failed title extraction produces.
// Callers must treat a to-do carrying it as no extraction, not a record.
const PlaceholderTitle = "New task"

var (
	forTomorrowRe = regexp.MustCompile(`\bfor\s+tomorrow\b`)
	forTodayRe    = regexp.MustCompile(`\bfor\s+today\b`)
	bareTomorrow  = regexp.MustCompile(`\btomorrow\b`)

	weeklyRe  = regexp.MustCompile(`\b(weekly|week)\b`)
	monthlyRe = regexp.MustCompile(`\b(monthly|month)\b`)

	// Title rewrite steps, applied in order.
	addPrefixRe      = regexp.MustCompile(`(?i)\badd\s+`)
	inListTrailingRe = regexp.MustCompile(`(?i)\s+in\s+(the\s+)?(to\s*-?do|todo)\s*list\s+for\s+(tomorrow|today)\s*\.?\s*$`)
	listTrailingRe   = regexp.MustCompile(`(?i)\s+(the\s+)?(to\s*-?do|todo)\s*list\s+for\s+(tomorrow|today)\s*\.?\s*$`)
	forTrailingRe    = regexp.MustCompile(`(?i)\s+for\s+(tomorrow|today)\s*\.?\s*$`)
	forTomorrowAnyRe = regexp.MustCompile(`(?i)\s+for\s+tomorrow\b`)
	forTodayAnyRe    = regexp.MustCompile(`(?i)\s+for\s+today\b`)
)

// TodoFields assembles a to-do record from one piece of text, resolved
// against now. The returned record carries PlaceholderTitle when no usable
// title survives stripping; it has no gate of its own, callers decide based
// on the title sentinel.
func TodoFields(text string, now time.Time) model.Todo {
	return model.Todo{
		Title:   TodoTitle(text),
		Scope:   TodoScope(text),
		DueDate: TodoDueDate(text, now),
	}
}

// TodoDueDate resolves a to-do due date: "for tomorrow"/"for today" first,
// then a bare "tomorrow", then any parseable date, defaulting to today.
func TodoDueDate(text string, now time.Time) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return now.Format(parse.ISODate)
	}

	switch {
	case forTomorrowRe.MatchString(lower):
		return now.AddDate(0, 0, 1).Format(parse.ISODate)
	case forTodayRe.MatchString(lower):
		return now.Format(parse.ISODate)
	case bareTomorrow.MatchString(lower) && !forTodayRe.MatchString(lower):
		return now.AddDate(0, 0, 1).Format(parse.ISODate)
	}

	if date, ok := parse.Date(text, now); ok {
		return date
	}
	return now.Format(parse.ISODate)
}

// TodoScope detects the recurrence horizon: weekly, monthly, or day.
func TodoScope(text string) model.Scope {
	lower := strings.ToLower(text)
	if weeklyRe.MatchString(lower) {
		return model.ScopeWeekly
	}
	if monthlyRe.MatchString(lower) {
		return model.ScopeMonthly
	}
	return model.ScopeDay
}

// TodoTitle strips list phrasing ("add ... to do list for tomorrow") from
// text. An empty result becomes PlaceholderTitle.
func TodoTitle(text string) string {
	title := text
	title = addPrefixRe.ReplaceAllString(title, "")
	title = inListTrailingRe.ReplaceAllString(title, "")
	title = listTrailingRe.ReplaceAllString(title, "")
	title = forTrailingRe.ReplaceAllString(title, "")
	title = forTomorrowAnyRe.ReplaceAllString(title, "")
	title = forTodayAnyRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)

	if title == "" {
		return PlaceholderTitle
	}
	return title
}
