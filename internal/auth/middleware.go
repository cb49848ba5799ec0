package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates bearer tokens and sets the client context
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("client_id", claims.ClientID)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), "client_id", claims.ClientID))

		c.Next()
	}
}

// GetClientID is a helper function to extract the client ID from context
func GetClientID(c *gin.Context) (string, bool) {
	clientID, exists := c.Get("client_id")
	if !exists {
		return "", false
	}

	id, ok := clientID.(string)
	return id, ok
}

// GetClaims is a helper function to extract full token claims from context
func GetClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*Claims)
	return authClaims, ok
}
