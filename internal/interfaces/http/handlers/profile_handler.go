package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/interfaces/http/middleware"
	"stone-shop.backend/internal/interfaces/http/response"
	"stone-shop.backend/internal/usecases"
)

// ProfileHandler handles the caller's own profile
type ProfileHandler struct {
	profileUsecase *usecases.ProfileUsecase
	authUsecase    *usecases.AuthUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileUsecase *usecases.ProfileUsecase, authUsecase *usecases.AuthUsecase) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		authUsecase:    authUsecase,
	}
}

// GetProfile returns the authenticated user with its profile
// GET /api/v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved.", gin.H{
		"user": user,
	})
}

// UpdateProfile edits the caller's own profile
// PATCH /api/v1/profile/update
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Authentication("Authentication credentials were not provided.", domainerrors.ErrUnauthorized))
		return
	}

	var input entities.UpdateProfileInput
	if !bindJSON(c, &input) {
		return
	}

	// first_name and last_name are checked here so each missing field is
	// reported on its own key
	fieldErrors := map[string]string{}
	if input.FirstName == "" {
		fieldErrors["first_name"] = "This field is required."
	}
	if input.LastName == "" {
		fieldErrors["last_name"] = "This field is required."
	}
	if len(fieldErrors) > 0 {
		response.Error(c, domainerrors.Validation("Invalid input.", fieldErrors))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated.", gin.H{
		"profile": profile,
	})
}
