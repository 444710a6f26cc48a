package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mvasher/scribe/internal/model"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestSentence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Intent
	}{
		{
			name: "date with reminder word",
			text: "Team meeting on 15 jan",
			want: model.IntentReminder,
		},
		{
			name: "date with reminder word outranks task verb",
			text: "Complete the assignment by tomorrow",
			want: model.IntentReminder,
		},
		{
			name: "date without task verb",
			text: "The launch happens 2025-04-01",
			want: model.IntentReminder,
		},
		{
			name: "birthday keyword",
			text: "Lena's birthday is 15/03/1990",
			want: model.IntentReminder,
		},
		{
			name: "birthday with month-name date",
			text: "John's birthday is on 15 Mar",
			want: model.IntentReminder,
		},
		{
			name: "task verb without date",
			text: "Finish the slides",
			want: model.IntentTodo,
		},
		{
			name: "task verb with undetectable day name",
			text: "Finish the report by Friday",
			want: model.IntentTodo,
		},
		{
			name: "prepare keyword",
			text: "Prepare the budget review",
			want: model.IntentTodo,
		},
		{
			name: "notes keyword",
			text: "The summary covers revenue",
			want: model.IntentNotes,
		},
		{
			name: "unmatched fragment defaults to todo",
			text: "eggs milk bread",
			want: model.IntentTodo,
		},
		{
			name: "blank input yields none",
			text: "   ",
			want: model.IntentNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentence(tt.text, testNow))
		})
	}
}
