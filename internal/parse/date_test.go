package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mvasher/scribe/internal/model"
)

// Fixed reference date for every relative-date test: Monday 2025-03-10.
var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantDate string
		wantOK   bool
	}{
		{
			name:     "today keyword",
			text:     "remind me today",
			wantDate: "2025-03-10",
			wantOK:   true,
		},
		{
			name:     "tomorrow keyword",
			text:     "call mom Tomorrow at 5pm",
			wantDate: "2025-03-11",
			wantOK:   true,
		},
		{
			name:     "iso date",
			text:     "deadline 2025-12-01",
			wantDate: "2025-12-01",
			wantOK:   true,
		},
		{
			name:     "iso date with single digit parts",
			text:     "due 2025/1/5",
			wantDate: "2025-01-05",
			wantOK:   true,
		},
		{
			name:     "delimited date is day first",
			text:     "pay rent 1/2/2025",
			wantDate: "2025-02-01",
			wantOK:   true,
		},
		{
			name:     "day before month name defaults to current year",
			text:     "submit report by 15 jan",
			wantDate: "2025-01-15",
			wantOK:   true,
		},
		{
			name:     "full month name matches on its prefix",
			text:     "party on 15 January 2026",
			wantDate: "2026-01-15",
			wantOK:   true,
		},
		{
			name:     "month name before day",
			text:     "review jan 15 2024",
			wantDate: "2024-01-15",
			wantOK:   true,
		},
		{
			name:     "ordinal day of current month",
			text:     "pay bill by 20th",
			wantDate: "2025-03-20",
			wantOK:   true,
		},
		{
			name:     "bare day after due",
			text:     "invoice due 5",
			wantDate: "2025-03-05",
			wantOK:   true,
		},
		{
			name:     "tomorrow beats explicit date",
			text:     "tomorrow not 2025-12-01",
			wantDate: "2025-03-11",
			wantOK:   true,
		},
		{
			name:   "no date",
			text:   "buy milk",
			wantOK: false,
		},
		{
			name:   "day name alone is not a date",
			text:   "finish the report by Friday",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, ok := Date(tt.text, testNow)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDate, date)
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantTime string
		wantOK   bool
	}{
		{name: "pm without minutes", text: "call mom at 5pm", wantTime: "17:00", wantOK: true},
		{name: "pm with minutes and space", text: "standup 5:30 pm", wantTime: "17:30", wantOK: true},
		{name: "am with minutes", text: "gym 9:15am", wantTime: "09:15", wantOK: true},
		{name: "midnight", text: "batch run 12am", wantTime: "00:00", wantOK: true},
		{name: "noon", text: "lunch 12pm", wantTime: "12:00", wantOK: true},
		{name: "twenty four hour", text: "review at 14:30", wantTime: "14:30", wantOK: true},
		{name: "twelve hour beats twenty four hour", text: "8pm or 14:30", wantTime: "20:00", wantOK: true},
		{name: "out of range hour rejected", text: "at 25:00", wantOK: false},
		{name: "out of range minute rejected", text: "at 10:75", wantOK: false},
		{name: "no time", text: "buy milk tomorrow", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock, ok := Time(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTime, clock)
		})
	}
}

func TestPriority(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Priority
	}{
		{name: "urgent", text: "URGENT: call the bank", want: model.PriorityHigh},
		{name: "important", text: "this is important", want: model.PriorityHigh},
		{name: "asap", text: "send it asap", want: model.PriorityHigh},
		{name: "low", text: "low priority cleanup", want: model.PriorityLow},
		{name: "high beats low when both present", text: "urgent but low effort", want: model.PriorityHigh},
		{name: "default", text: "water the plants", want: model.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Priority(tt.text))
		})
	}
}

func TestHasDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "parseable date", text: "meet on 15 jan", want: true},
		{name: "slash date with two digit year", text: "paid 3/4/25", want: true},
		{name: "iso date", text: "ship 2025-06-01", want: true},
		{name: "relative keyword", text: "see you tomorrow", want: true},
		{name: "day name is not date like", text: "finish by Friday", want: false},
		{name: "plain text", text: "buy milk", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDate(tt.text, testNow))
		})
	}
}
