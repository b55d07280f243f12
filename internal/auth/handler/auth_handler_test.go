package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/RafalauriSantos/totask-server/config"
	"github.com/RafalauriSantos/totask-server/internal/auth/domain"
	"github.com/RafalauriSantos/totask-server/internal/auth/dto"
	"github.com/RafalauriSantos/totask-server/internal/auth/handler"
	"github.com/RafalauriSantos/totask-server/internal/auth/service"
	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/RafalauriSantos/totask-server/internal/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testUserService(repo domain.UserRepository, tokens service.TokenGenerator) *service.UserService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{FrontendURL: "http://localhost:5173"}
	return service.NewUserService(repo, tokens, nil, cfg, log)
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	authHandler := handler.NewAuthHandler(testUserService(mockRepo, nil), validator.New())

	app := fiber.New()
	app.Post("/api/register", authHandler.Register)

	t.Run("success", func(t *testing.T) {
		input := dto.RegisterInput{Email: "test@example.com", Password: "password123"}

		mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).Return(nil, nil)
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, user *domain.User) error {
				user.ID = 1
				return nil
			})

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.RegisterOutput
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, 1, out.ID)
		assert.Equal(t, input.Email, out.Email)
	})

	t.Run("bad request - malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/register", bytes.NewReader([]byte("{invalid")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request - malformed email", func(t *testing.T) {
		body, _ := json.Marshal(dto.RegisterInput{Email: "not-an-email", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request - password too short", func(t *testing.T) {
		body, _ := json.Marshal(dto.RegisterInput{Email: "test@example.com", Password: "12345"})
		req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request - password too long", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}
		body, _ := json.Marshal(dto.RegisterInput{Email: "test@example.com", Password: string(long)})
		req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request - duplicate email", func(t *testing.T) {
		input := dto.RegisterInput{Email: "taken@example.com", Password: "password123"}

		mockRepo.EXPECT().GetByEmail(gomock.Any(), input.Email).
			Return(&domain.User{ID: 1, Email: input.Email}, nil)

		body, _ := json.Marshal(input)
		req := httptest.NewRequest("POST", "/api/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	authHandler := handler.NewAuthHandler(testUserService(mockRepo, mockTokenService), validator.New())

	app := fiber.New()
	app.Post("/api/login", authHandler.Login)

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: 7, Email: "test@example.com", PasswordHash: string(hashed)}

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockTokenService.EXPECT().Generate(user.ID, user.Email).Return("signed-token", nil)

		body, _ := json.Marshal(dto.LoginInput{Email: user.Email, Password: "password123"})
		req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.TokenResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "signed-token", out.Token)
	})

	t.Run("unauthorized - wrong password", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: user.Email, Password: "wrong-password"})
		req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unauthorized - unknown email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		body, _ := json.Marshal(dto.LoginInput{Email: "ghost@example.com", Password: "password123"})
		req := httptest.NewRequest("POST", "/api/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("bad request - invalid json", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/login", bytes.NewReader([]byte("{invalid-json")))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockMailer := mocks.NewMockSender(ctrl)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{FrontendURL: "http://localhost:5173"}
	userService := service.NewUserService(mockRepo, nil, mockMailer, cfg, log)
	authHandler := handler.NewAuthHandler(userService, validator.New())

	app := fiber.New()
	app.Post("/api/forgot-password", authHandler.ForgotPassword)

	t.Run("generic message for unknown email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)

		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: "ghost@example.com"})
		req := httptest.NewRequest("POST", "/api/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.MessageResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.Message)
	})

	t.Run("same message for known email", func(t *testing.T) {
		user := &domain.User{ID: 7, Email: "test@example.com"}

		mockRepo.EXPECT().GetByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockRepo.EXPECT().StoreResetToken(gomock.Any(), gomock.Any()).Return(nil)
		mockMailer.EXPECT().SendPasswordReset(user.Email, gomock.Any()).Return(nil)

		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: user.Email})
		req := httptest.NewRequest("POST", "/api/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad request - invalid email", func(t *testing.T) {
		body, _ := json.Marshal(dto.ForgotPasswordInput{Email: "not-an-email"})
		req := httptest.NewRequest("POST", "/api/forgot-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	authHandler := handler.NewAuthHandler(testUserService(mockRepo, nil), validator.New())

	app := fiber.New()
	app.Post("/api/reset-password", authHandler.ResetPassword)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().ConsumePasswordReset(gomock.Any(), "valid-token", gomock.Any()).Return(7, nil)

		body, _ := json.Marshal(dto.ResetPasswordInput{Token: "valid-token", Password: "newpassword"})
		req := httptest.NewRequest("POST", "/api/reset-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("bad request - invalid or expired token", func(t *testing.T) {
		mockRepo.EXPECT().ConsumePasswordReset(gomock.Any(), "stale-token", gomock.Any()).
			Return(0, autherror.ErrInvalidResetToken)

		body, _ := json.Marshal(dto.ResetPasswordInput{Token: "stale-token", Password: "newpassword"})
		req := httptest.NewRequest("POST", "/api/reset-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad request - password too short", func(t *testing.T) {
		body, _ := json.Marshal(dto.ResetPasswordInput{Token: "valid-token", Password: "12345"})
		req := httptest.NewRequest("POST", "/api/reset-password", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, _ := app.Test(req)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
