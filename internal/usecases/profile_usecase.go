package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"stone-shop.backend/internal/domain/entities"
	"stone-shop.backend/internal/domain/repositories"
)

// ProfileUsecase handles profile business logic
type ProfileUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(profileRepo repositories.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profileRepo: profileRepo}
}

// GetProfile gets the profile attached to a user
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.Profile, error) {
	return u.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile applies the edit to the caller's own profile and returns
// the updated row. Required-field checks happen at the handler.
func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Profile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	if input.Description != nil {
		profile.Description = *input.Description
	}
	if input.Image != nil {
		profile.Image = null.StringFrom(*input.Image)
	}

	if err := u.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return u.profileRepo.GetByUserID(ctx, userID)
}
