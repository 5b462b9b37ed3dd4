package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ethanm/go-todo/config"
	_ "github.com/mattn/go-sqlite3" // SQLite driver for database/sql
)

var db *sql.DB

// GetDB returns the shared database handle.
func GetDB() *sql.DB {
	return db
}

// StartSQLite opens the database file and creates the tables if they do not
// exist yet.
func StartSQLite() error {
	path := config.SQLitePath()

	var err error
	db, err = sql.Open("sqlite3", "file:"+path+"?_foreign_keys=1&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	err = db.PingContext(context.Background())
	if err != nil {
		return fmt.Errorf("cannot open sqlite database: %w", err)
	}

	err = CreateTables()
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// CreateTables creates both tables if absent.
func CreateTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS todos (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		date_created TIMESTAMP NOT NULL,
		user_id INTEGER NOT NULL REFERENCES users(id)
	)
	`
	_, err := db.Exec(query)
	return err
}

// DropTables removes both tables. Todos go first because of the foreign key.
func DropTables() error {
	_, err := db.Exec(`
	DROP TABLE IF EXISTS todos;
	DROP TABLE IF EXISTS users
	`)
	return err
}

// Reset drops and recreates the schema. Destructive and unconditional.
func Reset() error {
	if err := DropTables(); err != nil {
		return err
	}
	return CreateTables()
}

// CloseSQLite closes the database handle.
func CloseSQLite() {
	if db != nil {
		err := db.Close()
		if err != nil {
			panic(err)
		}
		db = nil
	}
}
