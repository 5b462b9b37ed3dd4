package app

import (
	"github.com/ethanm/go-todo/config"
	"github.com/ethanm/go-todo/database"
	"github.com/ethanm/go-todo/router"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

// SetupAndRunApp wires config, database, views and routes, then serves.
func SetupAndRunApp() error {
	err := config.LoadENV()
	if err != nil {
		return err
	}

	err = database.StartSQLite()
	if err != nil {
		return err
	}
	defer database.CloseSQLite()

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app)

	return app.Listen(":" + config.Port())
}
