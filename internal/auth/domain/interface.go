package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/RafalauriSantos/totask-server/internal/auth/domain UserRepository

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	StoreResetToken(ctx context.Context, rt *ResetToken) error
	// ConsumePasswordReset atomically invalidates the given reset token and
	// applies the new password hash to its owner. It returns the owner's id,
	// or an error when the token is unknown or already expired.
	ConsumePasswordReset(ctx context.Context, token, newPasswordHash string) (int, error)
}
