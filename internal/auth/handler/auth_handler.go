package handler

import (
	"github.com/RafalauriSantos/totask-server/internal/auth/dto"
	"github.com/RafalauriSantos/totask-server/internal/auth/service"
	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// genericResetMessage is returned by forgot-password whether or not the
// email is registered.
const genericResetMessage = "if the email exists, a reset link will be sent"

type AuthHandler struct {
	userService *service.UserService
	validate    *validator.Validate
}

func NewAuthHandler(userService *service.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{userService: userService, validate: validate}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	}

	user, err := h.userService.Register(c.Context(), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.RegisterOutput{
		ID:    user.ID,
		Email: user.Email,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	}

	tokenResponse, err := h.userService.Login(c.Context(), input)
	if err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(tokenResponse)
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var input dto.ForgotPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid email",
		})
	}

	if err := h.userService.ForgotPassword(c.Context(), input.Email); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: genericResetMessage})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid token or password",
		})
	}

	if err := h.userService.ResetPassword(c.Context(), input.Token, input.Password); err != nil {
		return c.Status(autherror.HTTPStatus(err)).JSON(fiber.Map{
			"error": autherror.HTTPMessage(err),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.MessageResponse{Message: "password reset successfully"})
}
