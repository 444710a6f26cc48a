package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mvasher/scribe/internal/model"
)

// AddNote appends a note, assigning its ID and creation time. Key points
// are stored as a JSON array.
func (s *SQLiteStorage) AddNote(ctx context.Context, note *model.Note) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateNote(note); err != nil {
		return err
	}

	note.ID = newID()
	note.CreatedAt = time.Now().UTC()

	var keyPoints any
	if len(note.KeyPoints) > 0 {
		data, err := json.Marshal(note.KeyPoints)
		if err != nil {
			return fmt.Errorf("failed to marshal key points: %w", err)
		}
		keyPoints = string(data)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, content, type, key_points, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		note.ID, note.Title, note.Content, string(note.Type), keyPoints, note.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

// ListNotes returns all notes, newest first.
func (s *SQLiteStorage) ListNotes(ctx context.Context) ([]model.Note, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, type, key_points, created_at
		FROM notes
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notes []model.Note
	for rows.Next() {
		var n model.Note
		var noteType string
		var keyPoints sql.NullString
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &noteType, &keyPoints, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		n.Type = model.NoteType(noteType)
		if keyPoints.Valid && keyPoints.String != "" {
			if err := json.Unmarshal([]byte(keyPoints.String), &n.KeyPoints); err != nil {
				return nil, fmt.Errorf("failed to unmarshal key points: %w", err)
			}
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}
	return notes, nil
}
