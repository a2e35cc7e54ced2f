package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService provides authentication functionality
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	AuthUserID string `json:"auth_user_id" example:"i501234"`
	Username   string `json:"username" example:"johndoe"`
	Email      string `json:"email" example:"john.doe@example.com"`
	IsAdmin    bool   `json:"is_admin" example:"false"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// GenerateJWT creates a JWT token for the given identity
func (s *AuthService) GenerateJWT(authUserID, username, email string, isAdmin bool) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		AuthUserID: authUserID,
		Username:   username,
		Email:      email,
		IsAdmin:    isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.config.TokenTTLMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   authUserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
