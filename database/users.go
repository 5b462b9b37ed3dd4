package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ethanm/go-todo/models"
)

// CreateUser inserts a new user and returns its id. Returns ErrDuplicate when
// the username is taken.
func CreateUser(username, passwordHash string) (int64, error) {
	res, err := db.Exec("INSERT INTO users (username, password) VALUES (?, ?)", username, passwordHash)
	if err != nil {
		if isUniqueConstraintErr(err) {
			return 0, ErrDuplicate
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return res.LastInsertId()
}

// GetUserByUsername returns the user with the given username, or ErrNotFound.
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := db.QueryRow("SELECT id, username, password FROM users WHERE username = ?", username).
		Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}

// GetUserByID returns the user with the given id, or ErrNotFound. The login
// gate uses this to turn a session id into the current user.
func GetUserByID(id int64) (*models.User, error) {
	var user models.User
	err := db.QueryRow("SELECT id, username, password FROM users WHERE id = ?", id).
		Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &user, nil
}
