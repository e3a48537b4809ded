package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stone-shop.backend/internal/domain/entities"
	"stone-shop.backend/internal/interfaces/http/response"
	"stone-shop.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// Register handles user registration
// POST /api/v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully.", gin.H{
		"user": user,
	})
}

// Login handles user login
// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	tokens, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful.", gin.H{
		"tokens": tokens,
	})
}

// RefreshToken exchanges a refresh credential for a new token pair
// POST /api/v1/token/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input entities.RefreshInput
	if !bindJSON(c, &input) {
		return
	}

	tokens, err := h.authUsecase.RefreshToken(c.Request.Context(), input.Refresh)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed.", gin.H{
		"tokens": tokens,
	})
}

// ResetPassword overwrites the password for the given email
// POST /api/v1/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password has been reset.", nil)
}
