// Command resetdb drops and recreates the application schema in place.
package main

import (
	"fmt"

	"github.com/ethanm/go-todo/config"
	"github.com/ethanm/go-todo/database"
)

func main() {
	fmt.Println(reset())
}

func reset() string {
	if err := config.LoadENV(); err != nil {
		return fmt.Sprintf("An error occurred: %v", err)
	}
	if err := database.StartSQLite(); err != nil {
		return fmt.Sprintf("An error occurred: %v", err)
	}
	defer database.CloseSQLite()

	if err := database.Reset(); err != nil {
		return fmt.Sprintf("An error occurred: %v", err)
	}
	return "Database reset successful!"
}
