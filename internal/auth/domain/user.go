package domain

import "time"

type User struct {
	ID           int
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ResetToken struct {
	ID        string
	UserID    int
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}
