package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskText    = errors.New("invalid task text")
	ErrInvalidPassword    = errors.New("invalid password")
)
