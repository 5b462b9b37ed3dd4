package handlers

import (
	"errors"

	"github.com/ethanm/go-todo/database"
	"github.com/ethanm/go-todo/forms"
	"github.com/ethanm/go-todo/middleware"
	"github.com/gofiber/fiber/v2"
)

// HandleIndex lists the current user's tasks.
func HandleIndex(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	todos, err := database.ListTodos(user.ID)
	if err != nil {
		return c.SendString("There was a problem loading your tasks.")
	}

	return c.Render("index", fiber.Map{
		"Tasks":    todos,
		"Username": user.Username,
	})
}

// HandleAddTodo creates a task owned by the current user.
func HandleAddTodo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	content := c.FormValue("content")

	if fieldErr := forms.ValidateContent(content); fieldErr != nil {
		return c.SendString("There was an issue adding your task")
	}

	_, err := database.CreateTodo(content, user.ID)
	if err != nil {
		return c.SendString("There was an issue adding your task")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleDeleteTodo deletes a task if it belongs to the current user.
func HandleDeleteTodo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendString("Task not found or you do not have permission to delete it.")
	}

	err = database.DeleteTodo(int64(id), user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.SendString("Task not found or you do not have permission to delete it.")
		}
		return c.SendString("There was a problem deleting that task.")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleUpdatePage renders the edit form for a task the current user owns.
func HandleUpdatePage(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendString("Task not found or you do not have permission to update it.")
	}

	todo, err := database.GetTodo(int64(id), user.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.SendString("Task not found or you do not have permission to update it.")
		}
		return c.SendString("There was a problem updating that task.")
	}

	return c.Render("update", fiber.Map{"Task": todo})
}

// HandleUpdateTodo overwrites the content of a task the current user owns.
func HandleUpdateTodo(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendString("Task not found or you do not have permission to update it.")
	}

	content := c.FormValue("content")
	if fieldErr := forms.ValidateContent(content); fieldErr != nil {
		return c.SendString("There was a problem updating that task.")
	}

	err = database.UpdateTodoContent(int64(id), user.ID, content)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.SendString("Task not found or you do not have permission to update it.")
		}
		return c.SendString("There was a problem updating that task.")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleReset drops and recreates the schema.
func HandleReset(c *fiber.Ctx) error {
	if err := database.Reset(); err != nil {
		return c.SendString("An error occurred: " + err.Error())
	}
	return c.SendString("Database reset successful!")
}
