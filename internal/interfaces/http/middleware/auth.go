package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/interfaces/http/response"
	"stone-shop.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// IsStaffKey is the context key for the staff flag
	IsStaffKey = "isStaff"
)

// AuthMiddleware validates the bearer credential and stores the caller's
// identity on the gin context.
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			response.Error(c, domainerrors.Authentication("Invalid authorization header. Use: Bearer <token>.", domainerrors.ErrUnauthorized))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Token is invalid."
			if err == jwt.ErrExpiredToken {
				message = "Token has expired."
			}
			response.Error(c, domainerrors.Authentication(message, err))
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(IsStaffKey, claims.IsStaff)

		c.Next()
	}
}

// RequireStaff gates a route to staff users. Must run after AuthMiddleware.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			response.Error(c, domainerrors.Forbidden("You do not have permission to perform this action."))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID gets the authenticated user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetUserEmail gets the authenticated user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// IsStaff reports whether the authenticated caller is staff
func IsStaff(c *gin.Context) bool {
	isStaff, exists := c.Get(IsStaffKey)
	if !exists {
		return false
	}
	return isStaff.(bool)
}
