package model

import "time"

// Scope is the recurrence horizon of a to-do, independent of its due date.
type Scope string

// Scope constants.
const (
	ScopeDay     Scope = "day"
	ScopeWeekly  Scope = "weekly"
	ScopeMonthly Scope = "monthly"
)

// Todo represents a task extracted from user input.
// DueDate is an ISO calendar date, empty when the task has no due date.
type Todo struct {
	CreatedAt time.Time
	ID        string
	Title     string
	Scope     Scope
	DueDate   string
}
