package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mvasher/scribe/internal/model"
)

// AppendActivity records one activity log entry.
func (s *SQLiteStorage) AppendActivity(ctx context.Context, entry *model.ActivityEntry) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateActivity(entry); err != nil {
		return err
	}

	entry.ID = newID()
	entry.CreatedAt = time.Now().UTC()

	var payload any
	if len(entry.Payload) > 0 {
		data, err := json.Marshal(entry.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal activity payload: %w", err)
		}
		payload = string(data)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO activity_log (id, type, summary, payload, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.ID, string(entry.Type), entry.Summary, payload, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert activity entry: %w", err)
	}
	return nil
}

// ListActivity returns the most recent activity entries, newest first.
// A limit of 0 or less returns everything.
func (s *SQLiteStorage) ListActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, type, summary, payload, created_at
		FROM activity_log
		ORDER BY created_at DESC, id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.db.QueryContext(ctx, query+` LIMIT ?`, limit)
	} else {
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query activity log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []model.ActivityEntry
	for rows.Next() {
		var e model.ActivityEntry
		var entryType string
		var payload sql.NullString
		if err := rows.Scan(&e.ID, &entryType, &e.Summary, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		e.Type = model.ActivityType(entryType)
		if payload.Valid && payload.String != "" {
			if err := json.Unmarshal([]byte(payload.String), &e.Payload); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activity payload: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity log: %w", err)
	}
	return entries, nil
}
