// Package parse extracts dates, times, priorities, and titles from free text.
// All functions are pure given their text argument and the caller's current
// date; they never fail, returning ok=false or a default instead.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mvasher/scribe/internal/model"
)

// ISODate is the layout for calendar dates in every record.
const ISODate = "2006-01-02"

var monthNum = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

const monthAlt = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`

// Pre-compiled patterns, evaluated in precedence order by Date.
var (
	todayRe    = regexp.MustCompile(`\btoday\b`)
	tomorrowRe = regexp.MustCompile(`\btomorrow\b`)
	isoRe      = regexp.MustCompile(`\b(\d{4})[-/](\d{1,2})[-/](\d{1,2})\b`)
	dmyRe      = regexp.MustCompile(`\b(\d{1,2})[-/](\d{1,2})[-/](\d{4})\b`)

	// "15 jan", "15 january 2025", "jan 15", "january 15 2025".
	// Month names match on their first three letters.
	monthDateRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(` + monthAlt + `)[a-z]*\s*(\d{4})?\b` +
		`|\b(` + monthAlt + `)[a-z]*\s*(\d{1,2})\s*(\d{4})?\b`)

	// "on 15th", "by 20", "due 3rd" - day of the current month.
	dayOnlyRe = regexp.MustCompile(`(?i)\b(?:on|by|before|due)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)

	twelveHourRe     = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	twentyFourHourRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

	highPriorityRe = regexp.MustCompile(`\b(high|urgent|important|asap)\b`)
	lowPriorityRe  = regexp.MustCompile(`\b(low)\b`)

	monthDayHintRe = regexp.MustCompile(`(?i)\d{1,2}\s*(` + monthAlt + `)`)
	isoHintRe      = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	slashHintRe    = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
)

// Date parses a calendar date out of text, resolved against now.
// Precedence: today/tomorrow, YYYY-MM-DD, DD-MM-YYYY, day+month name (year
// defaults to the current year), then "on/by/before/due Nth" for the current
// month. Delimited dates are read day-first; US-style MM-DD-YYYY input is
// silently misread, a known limitation carried from the source data.
func Date(text string, now time.Time) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if todayRe.MatchString(lower) {
		return now.Format(ISODate), true
	}
	if tomorrowRe.MatchString(lower) {
		return now.AddDate(0, 0, 1).Format(ISODate), true
	}

	if m := isoRe.FindStringSubmatch(text); m != nil {
		return m[1] + "-" + pad2(m[2]) + "-" + pad2(m[3]), true
	}

	if m := dmyRe.FindStringSubmatch(text); m != nil {
		return m[3] + "-" + pad2(m[2]) + "-" + pad2(m[1]), true
	}

	if m := monthDateRe.FindStringSubmatch(text); m != nil {
		year := now.Year()
		var day int
		var month time.Month
		switch {
		case m[1] != "":
			day, _ = strconv.Atoi(m[1])
			month = monthNum[strings.ToLower(m[2])[:3]]
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
		default:
			month = monthNum[strings.ToLower(m[4])[:3]]
			day, _ = strconv.Atoi(m[5])
			if m[6] != "" {
				year, _ = strconv.Atoi(m[6])
			}
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
	}

	if m := dayOnlyRe.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		d := time.Date(now.Year(), now.Month(), day, 12, 0, 0, 0, now.Location())
		return d.Format(ISODate), true
	}

	return "", false
}

// Time parses a clock time out of text into 24-hour HH:MM form.
// 12-hour forms with am/pm take precedence (minutes default to 00,
// 12am maps to 00:00 and 12pm to 12:00); a bare H:MM is accepted only
// when hour <= 23 and minute <= 59.
func Time(text string) (string, bool) {
	if m := twelveHourRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		meridiem := strings.ToLower(m[3])
		if meridiem == "pm" && hour < 12 {
			hour += 12
		}
		if meridiem == "am" && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	if m := twentyFourHourRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return fmt.Sprintf("%02d:%02d", hour, minute), true
		}
	}

	return "", false
}

// Priority detects a priority level in text. It never fails: absent any
// priority keyword the result is PriorityMedium.
func Priority(text string) model.Priority {
	lower := strings.ToLower(text)
	if highPriorityRe.MatchString(lower) {
		return model.PriorityHigh
	}
	if lowPriorityRe.MatchString(lower) {
		return model.PriorityLow
	}
	return model.PriorityMedium
}

// HasDate reports whether text contains anything date-like: a parseable
// date or an inline date pattern (day+month name, ISO date, or a delimited
// numeric date with a two- or four-digit year).
func HasDate(text string, now time.Time) bool {
	if _, ok := Date(text, now); ok {
		return true
	}
	if monthDayHintRe.MatchString(text) || isoHintRe.MatchString(text) || slashHintRe.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	return todayRe.MatchString(lower) || tomorrowRe.MatchString(lower)
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
