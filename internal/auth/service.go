package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"flight-scheduler-backend/internal/config"
	apperrors "flight-scheduler-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the lifetime of issued access tokens.
const tokenTTL = time.Hour

// Claims represents JWT token claims issued for an API client
type Claims struct {
	ClientID             string `json:"client_id" example:"scheduler-ui"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// TokenRequest represents the client-credentials payload for the token endpoint
type TokenRequest struct {
	ClientID     string `json:"client_id" binding:"required" example:"scheduler-ui"`
	ClientSecret string `json:"client_secret" binding:"required" example:"s3cr3t"`
}

// TokenResponse represents the response for a successful token request
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"3600"`
}

// Service provides token issuance and validation for API clients
type Service struct {
	jwtSecret    string
	clientID     string
	clientSecret string
}

// NewService creates a new authentication service from the application config
func NewService(cfg *config.Config) *Service {
	return &Service{
		jwtSecret:    cfg.JWTSecret,
		clientID:     cfg.AuthClientID,
		clientSecret: cfg.AuthClientSecret,
	}
}

// Authenticate checks a client id/secret pair against the configured credentials
func (s *Service) Authenticate(clientID, clientSecret string) error {
	if s.clientID == "" || s.clientSecret == "" {
		return apperrors.NewConfigurationError("client credentials are not configured")
	}

	idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(s.clientID))
	secretMatch := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(s.clientSecret))
	if idMatch != 1 || secretMatch != 1 {
		return apperrors.ErrInvalidClientCredentials
	}

	return nil
}

// GenerateToken creates a signed JWT for an authenticated client
func (s *Service) GenerateToken(clientID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "flight-scheduler-backend",
			Subject:   clientID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken validates and parses a JWT token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
