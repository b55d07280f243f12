package handler

import (
	"strings"

	"github.com/RafalauriSantos/totask-server/internal/auth/service"
	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const (
	bearerPrefix = "Bearer "

	// Locals keys set for downstream handlers once the token checks out.
	LocalsUserID = "userID"
	LocalsEmail  = "email"
)

// AuthRequired gates every task route: a missing, malformed, tampered or
// expired bearer token gets a 401 before any handler runs.
func AuthRequired(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrInvalidSession.Error(),
			})
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": autherror.ErrInvalidSession.Error(),
			})
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsEmail, claims.Email)

		return c.Next()
	}
}
