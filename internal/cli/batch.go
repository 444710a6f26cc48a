package cli

import (
	"fmt"
	"strings"

	"github.com/mvasher/scribe/internal/model"
)

// RenderBatch renders the detected-items summary for one engine invocation.
func RenderBatch(batch *model.DetectedBatch) string {
	if batch == nil || batch.Empty() {
		return SubtleStyle.Render("No reminders, to-dos, or notes detected.")
	}

	var lines []string

	for _, r := range batch.Reminders {
		line := fmt.Sprintf("%s %s %s", ReminderIcon, BoldStyle.Render(r.Title), SubtleStyle.Render(r.Date))
		if r.Time != "" {
			line += SubtleStyle.Render(" " + r.Time)
		}
		if r.Recurring == model.RecurrenceYearly {
			line += SubtleStyle.Render(" (yearly)")
		}
		lines = append(lines, line)
	}

	for _, t := range batch.Todos {
		line := fmt.Sprintf("%s %s %s", TodoIcon, BoldStyle.Render(t.Title), SubtleStyle.Render(string(t.Scope)))
		if t.DueDate != "" {
			line += SubtleStyle.Render(" due " + t.DueDate)
		}
		lines = append(lines, line)
	}

	for _, n := range batch.Notes {
		lines = append(lines, fmt.Sprintf("%s %s %s", NoteIcon, BoldStyle.Render(n.Title),
			SubtleStyle.Render(fmt.Sprintf("%d key points", len(n.KeyPoints)))))
	}

	title := fmt.Sprintf("Detected %d reminder(s), %d to-do(s), %d note(s)",
		len(batch.Reminders), len(batch.Todos), len(batch.Notes))
	if batch.Document != nil {
		title += " from " + batch.Document.Source
	}

	return RenderBox(title, strings.Join(lines, "\n"))
}
