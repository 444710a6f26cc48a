package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvasher/scribe/internal/model"
)

// AddTodo appends a to-do, assigning its ID and creation time.
func (s *SQLiteStorage) AddTodo(ctx context.Context, todo *model.Todo) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTodo(todo); err != nil {
		return err
	}

	todo.ID = newID()
	todo.CreatedAt = time.Now().UTC()
	if todo.Scope == "" {
		todo.Scope = model.ScopeDay
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, scope, due_date, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		todo.ID, todo.Title, string(todo.Scope), nullable(todo.DueDate), todo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

// ListTodos returns all to-dos ordered by due date, earliest first;
// undated tasks come last.
func (s *SQLiteStorage) ListTodos(ctx context.Context) ([]model.Todo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, scope, due_date, created_at
		FROM todos
		ORDER BY due_date IS NULL, due_date ASC, created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		var due sql.NullString
		var scope string
		if err := rows.Scan(&t.ID, &t.Title, &scope, &due, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		t.Scope = model.Scope(scope)
		t.DueDate = due.String
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}
	return todos, nil
}
