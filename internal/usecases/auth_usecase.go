package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/internal/domain/repositories"
	"stone-shop.backend/pkg/crypto"
	"stone-shop.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	uow         repositories.UnitOfWork
	jwtService  *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		uow:         uow,
		jwtService:  jwtService,
	}
}

// Register creates a user and its profile in one transaction.
// No credential is issued; the caller logs in afterwards.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := crypto.ValidatePassword(input.Password, email, input.FirstName, input.LastName); err != nil {
		return nil, domainerrors.Validation("Invalid input.", map[string]string{
			"password": err.Error(),
		})
	}

	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("A user with this email already exists.")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	profile := &entities.Profile{
		ID:          uuid.New(),
		UserID:      user.ID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Description: input.Description,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}
		return u.profileRepo.Create(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}

	user.Profile = profile
	return user, nil
}

// Login authenticates a user and returns a token pair. Unknown email and
// wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*jwt.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Authentication("No active account found with the given credentials.", domainerrors.ErrInvalidCredentials)
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Authentication("No active account found with the given credentials.", domainerrors.ErrInvalidCredentials)
	}

	if !user.IsActive {
		return nil, domainerrors.Authentication("Account is inactive.", domainerrors.ErrAccountInactive)
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsStaff)
}

// RefreshToken exchanges a valid refresh credential for a new pair
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Authentication("Token is invalid or expired.", err)
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Authentication("Token is invalid or expired.", domainerrors.ErrInvalidCredentials)
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domainerrors.Authentication("Account is inactive.", domainerrors.ErrAccountInactive)
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, user.IsStaff)
}

// ResetPassword overwrites the stored hash in place. Previously issued
// credentials stay valid until they expire.
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.Validation("Invalid input.", map[string]string{
				"email": "No user found with this email.",
			})
		}
		return err
	}

	if err := crypto.ValidatePassword(input.NewPassword, email); err != nil {
		return domainerrors.Validation("Invalid input.", map[string]string{
			"new_password": err.Error(),
		})
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(ctx, user.ID, passwordHash)
}

// GetUserByID gets a user with its profile attached
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserID(ctx, id)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	user.Profile = profile
	return user, nil
}
