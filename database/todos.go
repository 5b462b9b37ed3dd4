package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethanm/go-todo/models"
)

// ListTodos returns all todos owned by the given user, oldest first.
func ListTodos(userID int64) ([]models.Todo, error) {
	rows, err := db.Query(
		"SELECT id, content, completed, date_created, user_id FROM todos WHERE user_id = ? ORDER BY id ASC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Content, &todo.Completed, &todo.DateCreated, &todo.UserID); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}

	return todos, nil
}

// CreateTodo inserts a todo owned by userID and returns its id. The creation
// timestamp is taken per insert.
func CreateTodo(content string, userID int64) (int64, error) {
	res, err := db.Exec(
		"INSERT INTO todos (content, completed, date_created, user_id) VALUES (?, 0, ?, ?)",
		content, time.Now(), userID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert todo: %w", err)
	}
	return res.LastInsertId()
}

// GetTodo returns the todo with the given id if it is owned by userID.
// A todo owned by someone else is indistinguishable from a missing one.
func GetTodo(id, userID int64) (*models.Todo, error) {
	var todo models.Todo
	err := db.QueryRow(
		"SELECT id, content, completed, date_created, user_id FROM todos WHERE id = ? AND user_id = ?",
		id, userID,
	).Scan(&todo.ID, &todo.Content, &todo.Completed, &todo.DateCreated, &todo.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select todo: %w", err)
	}
	return &todo, nil
}

// UpdateTodoContent overwrites the content of a todo owned by userID.
func UpdateTodoContent(id, userID int64, content string) error {
	res, err := db.Exec(
		"UPDATE todos SET content = ? WHERE id = ? AND user_id = ?",
		content, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTodo removes a todo owned by userID.
func DeleteTodo(id, userID int64) error {
	res, err := db.Exec("DELETE FROM todos WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
