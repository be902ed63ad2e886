package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRequest(t *testing.T, db *DB, requestorID int64, description string, created time.Time) *models.ItemRequest {
	t.Helper()
	request := &models.ItemRequest{Description: description, RequestorID: requestorID, Created: created}
	require.NoError(t, db.CreateRequest(context.Background(), request))
	return request
}

func TestCreateAndGetRequest(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	requestor := createTestUser(t, db, "Requestor", "requestor@example.com")
	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	request := createTestRequest(t, db, requestor.ID, "need a drill", created)
	require.NotZero(t, request.ID)

	got, err := db.GetRequestByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, "need a drill", got.Description)
	assert.Equal(t, requestor.ID, got.RequestorID)
	assert.True(t, got.Created.Equal(created))
}

func TestGetRequestByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetRequestByID(context.Background(), 17)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetRequestsByRequestor(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	older := createTestRequest(t, db, alice.ID, "older", base)
	newer := createTestRequest(t, db, alice.ID, "newer", base.Add(time.Hour))
	createTestRequest(t, db, bob.ID, "other", base)

	requests, err := db.GetRequestsByRequestor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, newer.ID, requests[0].ID)
	assert.Equal(t, older.ID, requests[1].ID)
}

func TestGetRequestsForOthers(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	alice := createTestUser(t, db, "Alice", "alice@example.com")
	bob := createTestUser(t, db, "Bob", "bob@example.com")

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	createTestRequest(t, db, alice.ID, "mine", base)
	foreign := createTestRequest(t, db, bob.ID, "foreign", base.Add(time.Hour))

	requests, err := db.GetRequestsForOthers(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, foreign.ID, requests[0].ID)
}
