package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"stone-shop.backend/internal/domain/entities"
	domainerrors "stone-shop.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{
		ID:           uuid.New(),
		Email:        "miner@example.com",
		PasswordHash: "hashed",
		IsActive:     true,
	}
	require.NoError(t, repo.Create(ctx, user))

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.True(t, byID.IsActive)
	assert.False(t, byID.IsStaff)

	byEmail, err := repo.GetByEmail(ctx, "miner@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)

	_, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Email: "rotate@example.com", PasswordHash: "old", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new"))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)

	err = repo.UpdatePassword(ctx, uuid.New(), "whatever")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProfileRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	userRepo := NewUserRepository(db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	user := &entities.User{ID: uuid.New(), Email: "p@example.com", PasswordHash: "h", IsActive: true}
	require.NoError(t, userRepo.Create(ctx, user))

	profile := &entities.Profile{
		ID:        uuid.New(),
		UserID:    user.ID,
		FirstName: "Ada",
		LastName:  "Stone",
	}
	require.NoError(t, repo.Create(ctx, profile))

	got, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.False(t, got.Image.Valid)

	got.FirstName = "Grace"
	got.Description = "collector"
	got.Image = null.StringFrom("https://cdn.example.com/grace.png")
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "collector", updated.Description)
	assert.Equal(t, "https://cdn.example.com/grace.png", updated.Image.String)
}

func TestProfileRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	createUserTables(t, db)
	repo := NewProfileRepository(db)

	err := repo.Update(context.Background(), &entities.Profile{UserID: uuid.New(), FirstName: "X"})
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
