package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvasher/scribe/internal/model"
)

// AddReminder appends a reminder, assigning its ID and creation time.
func (s *SQLiteStorage) AddReminder(ctx context.Context, reminder *model.Reminder) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateReminder(reminder); err != nil {
		return err
	}

	reminder.ID = newID()
	reminder.CreatedAt = time.Now().UTC()
	if reminder.Priority == "" {
		reminder.Priority = model.PriorityMedium
	}
	if reminder.Recurring == "" {
		reminder.Recurring = model.RecurrenceNone
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO reminders (id, title, date, time, priority, recurring, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		reminder.ID, reminder.Title, reminder.Date, nullable(reminder.Time),
		string(reminder.Priority), string(reminder.Recurring),
		nullable(reminder.Source), reminder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

// ListReminders returns all reminders ordered by date, earliest first.
func (s *SQLiteStorage) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, date, time, priority, recurring, source, created_at
		FROM reminders
		ORDER BY date ASC, time ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var reminders []model.Reminder
	for rows.Next() {
		var r model.Reminder
		var clock, source sql.NullString
		var priority, recurring string
		if err := rows.Scan(&r.ID, &r.Title, &r.Date, &clock, &priority, &recurring, &source, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		r.Time = clock.String
		r.Source = source.String
		r.Priority = model.Priority(priority)
		r.Recurring = model.Recurrence(recurring)
		reminders = append(reminders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reminders: %w", err)
	}
	return reminders, nil
}

// nullable maps empty strings to NULL for optional columns.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
