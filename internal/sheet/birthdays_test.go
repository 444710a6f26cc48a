package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvasher/scribe/internal/model"
)

func TestExtractBirthdays(t *testing.T) {
	sh := &model.Sheet{
		Name:    "Birthdays",
		Headers: []string{"Name", "DOB"},
		Rows: [][]string{
			{"alice", "15/03/1990"},
			{"Bob", "2000-07-04"},
			{"", "1/1/2001"},
			{"Dana", ""},
			{"Eve", "July 4"},
			{"frank", "9-12"},
		},
	}

	got := ExtractBirthdays(sh)
	require.Len(t, got, 3)

	assert.Equal(t, model.Reminder{
		Title:     "Alice's birthday",
		Date:      "03-15",
		Priority:  model.PriorityMedium,
		Recurring: model.RecurrenceYearly,
		Source:    SourceSpreadsheet,
	}, got[0])

	// Full ISO dates keep month-day directly; the year is dropped.
	assert.Equal(t, "Bob's birthday", got[1].Title)
	assert.Equal(t, "07-04", got[1].Date)

	// Delimited dates without a year read day first.
	assert.Equal(t, "Frank's birthday", got[2].Title)
	assert.Equal(t, "12-09", got[2].Date)
}

func TestExtractBirthdaysGating(t *testing.T) {
	tests := []struct {
		name string
		sh   *model.Sheet
		want int
	}{
		{
			name: "birthday sheet name without a date column yields nothing",
			sh: &model.Sheet{
				Name:    "team birthdays 2025",
				Headers: []string{"Person", "When"},
				Rows:    [][]string{{"Gil", "1/2/1999"}},
			},
			// The date column header must still be recognized.
			want: 0,
		},
		{
			name: "date header marks a recurring table",
			sh: &model.Sheet{
				Name:    "Sheet1",
				Headers: []string{"Person", "Date"},
				Rows:    [][]string{{"Gil", "1/2/1999"}},
			},
			want: 1,
		},
		{
			name: "unrelated table yields nothing",
			sh: &model.Sheet{
				Name:    "Expenses",
				Headers: []string{"Item", "Cost"},
				Rows:    [][]string{{"Desk", "120"}},
			},
			want: 0,
		},
		{
			name: "empty rows",
			sh: &model.Sheet{
				Name:    "Birthdays",
				Headers: []string{"Name", "DOB"},
			},
			want: 0,
		},
		{
			name: "nil sheet",
			sh:   nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ExtractBirthdays(tt.sh), tt.want)
		})
	}
}
