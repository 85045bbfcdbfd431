package services

import (
	"time"

	"github.com/Asahu22/E-commerce/models"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 24 * time.Hour

// AuthService verifies the configured admin credentials and issues
// signed session tokens. There is a single operator account; no lockout,
// throttling or revocation exists.
type AuthService struct {
	adminUsername string
	adminPassword string
	secret        []byte
}

func NewAuthService(adminUsername, adminPassword, secret string) *AuthService {
	return &AuthService{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		secret:        []byte(secret),
	}
}

// Login checks the credentials by exact match and returns a signed HS256
// token valid for 24 hours, or models.ErrInvalidCredentials.
func (s *AuthService) Login(username, password string) (string, error) {
	if username != s.adminUsername || password != s.adminPassword {
		return "", models.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
