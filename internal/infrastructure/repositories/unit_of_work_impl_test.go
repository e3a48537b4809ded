package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stone-shop.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)
	profileRepo := NewProfileRepository(db)

	userID := uuid.New()
	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := userRepo.Create(ctx, &entities.User{
			ID: userID, Email: "tx@example.com", PasswordHash: "h", IsActive: true,
		}); err != nil {
			return err
		}
		return profileRepo.Create(ctx, &entities.Profile{
			ID: uuid.New(), UserID: userID, FirstName: "T", LastName: "X",
		})
	})
	require.NoError(t, err)

	user, err := userRepo.GetByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "tx@example.com", user.Email)

	profile, err := profileRepo.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "T", profile.FirstName)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)

	userID := uuid.New()
	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := userRepo.Create(ctx, &entities.User{
			ID: userID, Email: "gone@example.com", PasswordHash: "h", IsActive: true,
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = userRepo.GetByID(context.Background(), userID)
	assert.Error(t, err, "user row must not survive the rollback")
}
