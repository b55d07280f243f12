package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("/api/register", h.Register)
	app.Post("/api/login", h.Login)
	app.Post("/api/forgot-password", h.ForgotPassword)
	app.Post("/api/reset-password", h.ResetPassword)
}
