package model

// Intent is the coarse category assigned to a piece of text before field
// extraction. IntentNone means no explicit intent was detected and the
// caller should fall through to its heuristic cascade.
type Intent string

// Intent constants.
const (
	IntentReminder Intent = "reminder"
	IntentTodo     Intent = "todo"
	IntentNotes    Intent = "notes"
	IntentNone     Intent = "none"
)
