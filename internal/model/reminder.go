// Package model defines the core domain models used throughout the application.
package model

import "time"

// Priority indicates how urgent a reminder is.
type Priority string

// Priority constants.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recurrence indicates whether a reminder repeats.
type Recurrence string

// Recurrence constants.
const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceYearly Recurrence = "yearly"
)

// Reminder represents a dated event extracted from user input.
// Date is an ISO calendar date (2006-01-02), except for yearly recurring
// reminders where it is a month-day pair (01-02). Time is a 24-hour HH:MM
// string, empty when no time was detected.
type Reminder struct {
	CreatedAt time.Time
	ID        string
	Title     string
	Date      string
	Time      string
	Priority  Priority
	Recurring Recurrence
	Source    string
}
