package database

import (
	"context"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetItem(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	item := createTestItem(t, db, owner.ID, "Drill", true)
	require.NotZero(t, item.ID)

	got, err := db.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Drill", got.Name)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.True(t, got.Available)
	assert.Zero(t, got.RequestID)
}

func TestCreateItem_WithRequest(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	requestor := createTestUser(t, db, "Requestor", "requestor@example.com")

	request := &models.ItemRequest{
		Description: "need a drill",
		RequestorID: requestor.ID,
		Created:     time.Now().UTC(),
	}
	require.NoError(t, db.CreateRequest(ctx, request))

	item := &models.Item{
		Name:      "Drill",
		Available: true,
		OwnerID:   owner.ID,
		RequestID: request.ID,
	}
	require.NoError(t, db.CreateItem(ctx, item))

	got, err := db.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, request.ID, got.RequestID)
}

func TestGetItemByID_NotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetItemByID(context.Background(), 101)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateItem(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	item := createTestItem(t, db, owner.ID, "Drill", true)

	item.Name = "Power drill"
	item.Available = false
	require.NoError(t, db.UpdateItem(ctx, item))

	got, err := db.GetItemByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Power drill", got.Name)
	assert.False(t, got.Available)
}

func TestGetItemsByOwner(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	other := createTestUser(t, db, "Other", "other@example.com")
	createTestItem(t, db, owner.ID, "Drill", true)
	createTestItem(t, db, owner.ID, "Saw", false)
	createTestItem(t, db, other.ID, "Hammer", true)

	items, err := db.GetItemsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Drill", items[0].Name)
	assert.Equal(t, "Saw", items[1].Name)
}

func TestSearchItems(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	drill := createTestItem(t, db, owner.ID, "Power Drill", true)
	// Недоступная вещь не попадает в поиск.
	createTestItem(t, db, owner.ID, "Broken Drill", false)

	saw := &models.Item{Name: "Saw", Description: "cordless drill bits included", Available: true, OwnerID: owner.ID}
	require.NoError(t, db.CreateItem(ctx, saw))

	items, err := db.SearchItems(ctx, "dRiLl")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, drill.ID, items[0].ID)
	assert.Equal(t, saw.ID, items[1].ID)
}

func TestSearchItems_EmptyText(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	createTestItem(t, db, owner.ID, "Drill", true)

	items, err := db.SearchItems(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItemsByRequestIDs(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	owner := createTestUser(t, db, "Owner", "owner@example.com")
	requestor := createTestUser(t, db, "Requestor", "requestor@example.com")

	first := &models.ItemRequest{Description: "drill", RequestorID: requestor.ID, Created: time.Now().UTC()}
	second := &models.ItemRequest{Description: "saw", RequestorID: requestor.ID, Created: time.Now().UTC()}
	require.NoError(t, db.CreateRequest(ctx, first))
	require.NoError(t, db.CreateRequest(ctx, second))

	require.NoError(t, db.CreateItem(ctx, &models.Item{Name: "Drill", Available: true, OwnerID: owner.ID, RequestID: first.ID}))
	require.NoError(t, db.CreateItem(ctx, &models.Item{Name: "Free item", Available: true, OwnerID: owner.ID}))

	items, err := db.GetItemsByRequestIDs(ctx, []int64{first.ID, second.ID})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Drill", items[0].Name)

	items, err = db.GetItemsByRequestIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
