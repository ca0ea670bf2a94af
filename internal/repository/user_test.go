package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trading-platform-db/internal/models"
)

func TestUserCreateRejectsInvalidRecord(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	bad := &models.User{Email: "not-an-email", PasswordHash: "x"}

	err := repo.Create(context.Background(), bad)

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUserFindActiveExcludesInactiveAndDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	active := &models.User{Email: "a@example.com", PasswordHash: "hash-of-eight"}
	inactive := &models.User{Email: "b@example.com", PasswordHash: "hash-of-eight", IsActive: false}
	deleted := &models.User{Email: "c@example.com", PasswordHash: "hash-of-eight", IsActive: true}
	active.IsActive = true

	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, inactive))
	require.NoError(t, repo.Create(ctx, deleted))
	require.NoError(t, repo.SoftDelete(ctx, deleted.ID))

	users, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, active.ID, users[0].ID)
}

func TestUserUniqueEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	first := &models.User{Email: "dup@example.com", PasswordHash: "hash-of-eight", IsActive: true}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Email: "dup@example.com", PasswordHash: "hash-of-eight", IsActive: true}
	assert.Error(t, repo.Create(ctx, second))
}

func TestUserGetByEmail(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepo(db)

	user := &models.User{Email: "alice@example.com", PasswordHash: "hash-of-eight", IsActive: true}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}
