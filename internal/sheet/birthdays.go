package sheet

import (
	"regexp"
	"strings"

	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/parse"
)

// SourceSpreadsheet tags every reminder imported from a spreadsheet file.
const SourceSpreadsheet = "excel"

// Case-insensitive column names consulted per row.
var (
	nameColumns = []string{"name", "names", "person"}
	dateColumns = []string{"date", "dob"}

	// Headers whose presence marks a sheet as a recurring-date table.
	dateHintHeaders = []string{"dob", "date", "birth", "birthday"}
)

var (
	digitsRe    = regexp.MustCompile(`^\d+$`)
	isoDateRe   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	delimiterRe = regexp.MustCompile(`[-/]`)
)

// ExtractBirthdays extracts one yearly reminder per valid row of a
// recurring-date table. Sheets that don't look like one (no "birthday" in
// the sheet name and no date-like column header) yield nothing. Rows missing
// a name or date, or with non-numeric date components, are skipped
// individually.
func ExtractBirthdays(sh *model.Sheet) []model.Reminder {
	if sh == nil || len(sh.Rows) == 0 || !isRecurringDateTable(sh) {
		return nil
	}

	var reminders []model.Reminder
	for _, row := range sh.Rows {
		name := cellByHeader(sh, row, nameColumns)
		rawDate := cellByHeader(sh, row, dateColumns)
		if name == "" || rawDate == "" {
			continue
		}

		monthDay, ok := normalizeMonthDay(rawDate)
		if !ok {
			continue
		}

		reminders = append(reminders, model.Reminder{
			Title:     parse.Capitalize(name) + "'s birthday",
			Date:      monthDay,
			Priority:  model.PriorityMedium,
			Recurring: model.RecurrenceYearly,
			Source:    SourceSpreadsheet,
		})
	}
	return reminders
}

func isRecurringDateTable(sh *model.Sheet) bool {
	if strings.Contains(strings.ToLower(sh.Name), "birthday") {
		return true
	}
	for _, h := range sh.Headers {
		lower := strings.ToLower(h)
		for _, hint := range dateHintHeaders {
			if lower == hint {
				return true
			}
		}
	}
	return false
}

func cellByHeader(sh *model.Sheet, row []string, candidates []string) string {
	for i, h := range sh.Headers {
		if i >= len(row) {
			break
		}
		lower := strings.ToLower(h)
		for _, c := range candidates {
			if lower == c {
				if v := strings.TrimSpace(row[i]); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// normalizeMonthDay reduces a date value to MM-DD; the year is dropped since
// these are yearly recurring events. Full ISO dates keep their month and day;
// delimited dates are read day-first (D-M or D/M leading components).
func normalizeMonthDay(value string) (string, bool) {
	value = strings.TrimSpace(value)

	if m := isoDateRe.FindStringSubmatch(value); m != nil {
		return m[2] + "-" + m[3], true
	}

	parts := delimiterRe.Split(value, -1)
	if len(parts) < 2 {
		return "", false
	}
	day, month := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if !digitsRe.MatchString(day) || !digitsRe.MatchString(month) {
		return "", false
	}
	return pad2(month) + "-" + pad2(day), true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
