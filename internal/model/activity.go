package model

import "time"

// ActivityType categorizes activity log entries.
type ActivityType string

// Activity type constants.
const (
	ActivityReminder ActivityType = "reminder"
	ActivityTodo     ActivityType = "todo"
	ActivityNote     ActivityType = "note"
	ActivityDocument ActivityType = "document"
	ActivityMessage  ActivityType = "message"
)

// ActivityEntry records one event in the append-only activity log.
type ActivityEntry struct {
	CreatedAt time.Time
	Payload   map[string]string
	ID        string
	Type      ActivityType
	Summary   string
}
