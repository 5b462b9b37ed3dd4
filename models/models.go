package models

import "time"

// User is a registered account. Password holds the bcrypt hash, never the
// plaintext.
type User struct {
	ID       int64
	Username string
	Password string
}

// Todo is a single task owned by one user. Completed is kept in the schema
// but no route currently changes it.
type Todo struct {
	ID          int64
	Content     string
	Completed   int
	DateCreated time.Time
	UserID      int64
}
