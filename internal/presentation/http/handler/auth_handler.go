package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/shoppos-api/internal/application/service"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles the login request
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// Logout acknowledges logout. Tokens are stateless, so the client just
// discards them.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logged out successfully", nil)
}

// Me returns the authenticated account
func (h *AuthHandler) Me(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	response.OK(c, "Account retrieved successfully", actor)
}
