package auth

import (
	"net/http"

	apperrors "flight-scheduler-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for authentication
type Handler struct {
	service *Service
}

// NewHandler creates a new authentication handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Token handles POST /api/auth/token
// @Summary Issue an access token
// @Description Exchange client credentials for a short-lived bearer token
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body auth.TokenRequest true "Client credentials"
// @Success 200 {object} auth.TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request payload"
// @Failure 401 {object} map[string]interface{} "Invalid client credentials"
// @Failure 500 {object} map[string]interface{} "Failed to generate token"
// @Router /api/auth/token [post]
func (h *Handler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := h.service.Authenticate(req.ClientID, req.ClientSecret); err != nil {
		if apperrors.IsConfiguration(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication is not configured"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid client credentials"})
		return
	}

	token, err := h.service.GenerateToken(req.ClientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tokenTTL.Seconds()),
	})
}
