package router

import (
	"github.com/ethanm/go-todo/handlers"
	"github.com/ethanm/go-todo/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/login", handlers.HandleLoginPage)
	app.Post("/login", handlers.HandleLogin)
	app.Get("/register", handlers.HandleRegisterPage)
	app.Post("/register", handlers.HandleRegister)

	// everything else requires a session
	auth := app.Group("/", middleware.RequireLogin)

	auth.Get("/", handlers.HandleIndex)
	auth.Post("/", handlers.HandleIndex)
	auth.Post("/add", handlers.HandleAddTodo)
	auth.Get("/delete/:id", handlers.HandleDeleteTodo)
	auth.Get("/update/:id", handlers.HandleUpdatePage)
	auth.Post("/update/:id", handlers.HandleUpdateTodo)
	auth.Get("/reset", handlers.HandleReset)
	auth.Get("/logout", handlers.HandleLogout)
}
