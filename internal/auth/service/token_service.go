package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/RafalauriSantos/totask-server/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(userID int, email string) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

// TokenService mints and checks the stateless session tokens. There is no
// server-side revocation; a token stays valid until its expiry.
type TokenService struct {
	Secret      string
	TokenExpiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret:      secret,
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(userID int, email string) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given session token string.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
