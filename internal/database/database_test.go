package database

import (
	"context"
	"io"
	"testing"
	"time"

	"shareit/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	logger := zerolog.New(io.Discard)
	db, err := NewDB(":memory:", &logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email}
	require.NoError(t, db.CreateUser(context.Background(), user))
	return user
}

func createTestItem(t *testing.T, db *DB, ownerID int64, name string, available bool) *models.Item {
	t.Helper()
	item := &models.Item{
		Name:        name,
		Description: name + " description",
		Available:   available,
		OwnerID:     ownerID,
	}
	require.NoError(t, db.CreateItem(context.Background(), item))
	return item
}

func createTestBooking(t *testing.T, db *DB, itemID, bookerID int64, start, end time.Time, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   status,
	}
	require.NoError(t, db.CreateBooking(context.Background(), booking))
	return booking
}

func TestNewDB_CreatesSchema(t *testing.T) {
	db := setupTestDB(t)

	// Все таблицы должны существовать и быть пустыми.
	for _, table := range []string{"users", "items", "bookings", "comments", "requests"} {
		var count int
		err := db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count)
		require.NoError(t, err, "table %s", table)
		require.Zero(t, count)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupTestDB(t)

	item := &models.Item{Name: "orphan", Available: true, OwnerID: 999}
	err := db.CreateItem(context.Background(), item)
	require.Error(t, err)
}
