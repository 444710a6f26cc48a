package model

// DocumentInfo identifies the document a batch was extracted from.
type DocumentInfo struct {
	Source  string
	Excerpt string
}

// DetectedBatch aggregates everything one dispatcher invocation extracted.
// It is transient: surfaced to the caller for display, never persisted.
type DetectedBatch struct {
	Document  *DocumentInfo
	Reminders []Reminder
	Todos     []Todo
	Notes     []Note
}

// Empty reports whether the batch contains no extracted records.
func (b *DetectedBatch) Empty() bool {
	return len(b.Reminders) == 0 && len(b.Todos) == 0 && len(b.Notes) == 0
}
