package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *TaskHandler, authRequired fiber.Handler) {
	tarefas := app.Group("/api/tarefas", authRequired)
	tarefas.Get("/", h.List)
	tarefas.Post("/", h.Create)
	tarefas.Patch("/:id", h.Update)
	tarefas.Delete("/:id", h.Delete)
}
