package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/RafalauriSantos/totask-server/config"
	"github.com/RafalauriSantos/totask-server/internal/auth/domain"
	"github.com/RafalauriSantos/totask-server/internal/auth/dto"
	autherror "github.com/RafalauriSantos/totask-server/internal/errors"
	"github.com/RafalauriSantos/totask-server/internal/mail"
	"github.com/RafalauriSantos/totask-server/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo   domain.UserRepository
	tokens TokenGenerator
	mailer mail.Sender
	cfg    *config.Config
	log    *slog.Logger
}

func NewUserService(repo domain.UserRepository, tokens TokenGenerator, mailer mail.Sender,
	cfg *config.Config, log *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
		mailer: mailer,
		cfg:    cfg,
		log:    log,
	}
}

// NormalizeEmail is the canonical form stored and looked up: trimmed and
// lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)

	existingUser, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), constant.BcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, autherror.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{Token: token}, nil
}

// ForgotPassword issues a single-use reset token and mails the reset link.
// An unknown email is not an error: the caller gets the same answer either
// way, so account existence never leaks.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	now := time.Now()

	rt := &domain.ResetToken{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(constant.ResetTokenTTL),
		CreatedAt: now,
	}

	if err := s.repo.StoreResetToken(ctx, rt); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.cfg.FrontendURL, token)

	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		s.log.Error("failed to send reset email", slog.String("err", err.Error()))
		return err
	}

	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, token, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), constant.BcryptCost)
	if err != nil {
		return err
	}

	userID, err := s.repo.ConsumePasswordReset(ctx, token, string(hashedPassword))
	if err != nil {
		return err
	}

	s.log.Info("password reset", slog.Int("user_id", userID))

	return nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, constant.ResetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
