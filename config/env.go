package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadENV reads the .env file into the process environment. A missing file is
// not an error; everything has a default.
func LoadENV() error {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Port returns the HTTP listen port.
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// SQLitePath returns the path of the database file.
func SQLitePath() string {
	path := os.Getenv("SQLITE_PATH")
	if path == "" {
		path = "todo.db"
	}
	return path
}

// SessionSecret returns the key used to sign session cookies.
func SessionSecret() string {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev_secret_change_me"
	}
	return secret
}
