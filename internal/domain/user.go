package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é o assessor; cada usuário é um tenant isolado
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID    string
	TenantID  string
	UserName  string
	UserEmail string
	jwt.RegisteredClaims
}
