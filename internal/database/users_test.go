package database

import (
	"context"
	"testing"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "Alice", "alice@example.com")
	require.NotZero(t, user.ID)

	got, err := db.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "Alice", "alice@example.com")

	err := db.CreateUser(ctx, &models.User{Name: "Another", Email: "alice@example.com"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "Alice", "alice@example.com")

	user.Name = "Alice B"
	user.Email = "alice.b@example.com"
	require.NoError(t, db.UpdateUser(ctx, user))

	got, err := db.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", got.Name)
	assert.Equal(t, "alice.b@example.com", got.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	db := setupTestDB(t)

	err := db.UpdateUser(context.Background(), &models.User{ID: 404, Name: "x", Email: "x@example.com"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser_EmailConflict(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	bob.Email = "alice@example.com"
	err := db.UpdateUser(ctx, bob)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestGetAllUsers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	users, err := db.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	createTestUser(t, db, "Alice", "alice@example.com")
	createTestUser(t, db, "Bob", "bob@example.com")

	users, err = db.GetAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "Alice", "alice@example.com")
	require.NoError(t, db.DeleteUser(ctx, user.ID))

	_, err := db.GetUserByID(ctx, user.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, db.DeleteUser(ctx, user.ID), ErrNotFound)
}

func TestUserExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	exists, err := db.UserExists(ctx, 1)
	require.NoError(t, err)
	assert.False(t, exists)

	user := createTestUser(t, db, "Alice", "alice@example.com")
	exists, err = db.UserExists(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEmailExists(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")

	exists, err := db.EmailExists(ctx, "alice@example.com", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// Собственный email пользователя не считается занятым.
	exists, err = db.EmailExists(ctx, "alice@example.com", alice.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = db.EmailExists(ctx, "free@example.com", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}
