package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shareit/internal/models"
)

const bookingColumns = `b.id, b.item_id, i.name, i.owner_id, b.booker_id, u.name,
                        b.start_time, b.end_time, b.status, b.created_at, b.updated_at`

const bookingJoins = ` FROM bookings b
        JOIN items i ON i.id = b.item_id
        JOIN users u ON u.id = b.booker_id`

func scanBooking(row interface{ Scan(...any) error }) (*models.Booking, error) {
	b := &models.Booking{}
	err := row.Scan(
		&b.ID, &b.ItemID, &b.ItemName, &b.OwnerID, &b.BookerID, &b.BookerName,
		&b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (db *DB) CreateBooking(ctx context.Context, booking *models.Booking) error {
	query := `INSERT INTO bookings (item_id, booker_id, start_time, end_time, status, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	result, err := db.ExecContext(ctx, query,
		booking.ItemID, booking.BookerID,
		booking.Start.UTC(), booking.End.UTC(),
		booking.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}
	booking.ID = id
	booking.CreatedAt = now
	booking.UpdatedAt = now
	return nil
}

func (db *DB) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = ?`

	booking, err := scanBooking(db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// DecideBooking переводит заявку в терминальный статус. Условие
// status = 'WAITING' в самом UPDATE — защита от гонки конкурентных
// решений: проигравший получает ErrAlreadyDecided.
func (db *DB) DecideBooking(ctx context.Context, id int64, status models.BookingStatus) error {
	query := `UPDATE bookings SET status = ?, updated_at = ? WHERE id = ? AND status = ?`
	result, err := db.ExecContext(ctx, query, status, time.Now().UTC(), id, models.StatusWaiting)
	if err != nil {
		return fmt.Errorf("failed to decide booking: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrAlreadyDecided)
	}
	return nil
}

// bookingFilterClause возвращает SQL-условие корзины и его аргументы.
// Временные корзины сравниваются с переданным "сейчас".
func bookingFilterClause(filter models.StateFilter, now time.Time) (string, []any) {
	now = now.UTC()
	switch filter {
	case models.FilterCurrent:
		return ` AND b.start_time <= ? AND b.end_time > ?`, []any{now, now}
	case models.FilterPast:
		return ` AND b.end_time < ?`, []any{now}
	case models.FilterFuture:
		return ` AND b.start_time > ?`, []any{now}
	case models.FilterWaiting:
		return ` AND b.status = ?`, []any{models.StatusWaiting}
	case models.FilterRejected:
		return ` AND b.status = ?`, []any{models.StatusRejected}
	default:
		return ``, nil
	}
}

func (db *DB) GetBookingsByBooker(ctx context.Context, bookerID int64, filter models.StateFilter, now time.Time) ([]*models.Booking, error) {
	clause, extra := bookingFilterClause(filter, now)
	query := `SELECT ` + bookingColumns + bookingJoins +
		` WHERE b.booker_id = ?` + clause + ` ORDER BY b.start_time DESC`
	args := append([]any{bookerID}, extra...)
	return db.queryBookings(ctx, query, args...)
}

func (db *DB) GetBookingsByOwner(ctx context.Context, ownerID int64, filter models.StateFilter, now time.Time) ([]*models.Booking, error) {
	clause, extra := bookingFilterClause(filter, now)
	query := `SELECT ` + bookingColumns + bookingJoins +
		` WHERE i.owner_id = ?` + clause + ` ORDER BY b.start_time DESC`
	args := append([]any{ownerID}, extra...)
	return db.queryBookings(ctx, query, args...)
}

func (db *DB) GetBookingsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins +
		` WHERE b.start_time >= ? AND b.start_time < ? ORDER BY b.start_time DESC`
	return db.queryBookings(ctx, query, start.UTC(), end.UTC())
}

// HasCompletedBooking сообщает, есть ли у пользователя подтвержденная
// и уже завершившаяся аренда вещи. Используется для допуска к комментариям.
func (db *DB) HasCompletedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	query := `SELECT EXISTS(
                SELECT 1 FROM bookings
                WHERE item_id = ? AND booker_id = ? AND status = ? AND end_time < ?)`

	var exists bool
	err := db.QueryRowContext(ctx, query, itemID, bookerID, models.StatusApproved, now.UTC()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check completed booking: %w", err)
	}
	return exists, nil
}

// GetLastBookingEnds возвращает по каждой вещи дату окончания последнего
// завершившегося бронирования.
func (db *DB) GetLastBookingEnds(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]time.Time, error) {
	query := `SELECT item_id, end_time FROM bookings
              WHERE item_id IN (%s) AND end_time < ? ORDER BY end_time DESC`
	return db.queryBookingBounds(ctx, query, itemIDs, now)
}

// GetNextBookingStarts возвращает по каждой вещи дату начала ближайшего
// будущего бронирования.
func (db *DB) GetNextBookingStarts(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]time.Time, error) {
	query := `SELECT item_id, start_time FROM bookings
              WHERE item_id IN (%s) AND start_time > ? ORDER BY start_time ASC`
	return db.queryBookingBounds(ctx, query, itemIDs, now)
}

// queryBookingBounds берет первую строку на вещь; порядок задает сам запрос.
func (db *DB) queryBookingBounds(ctx context.Context, queryTemplate string, itemIDs []int64, now time.Time) (map[int64]time.Time, error) {
	result := make(map[int64]time.Time)
	if len(itemIDs) == 0 {
		return result, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(itemIDs)), ",")
	query := fmt.Sprintf(queryTemplate, placeholders)

	args := make([]any, 0, len(itemIDs)+1)
	for _, id := range itemIDs {
		args = append(args, id)
	}
	args = append(args, now.UTC())

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking bounds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID int64
		var ts time.Time
		if err := rows.Scan(&itemID, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan booking bound: %w", err)
		}
		if _, ok := result[itemID]; !ok {
			result[itemID] = ts
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate booking bounds: %w", err)
	}
	return result, nil
}

func (db *DB) queryBookings(ctx context.Context, query string, args ...any) ([]*models.Booking, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*models.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}
	return bookings, nil
}
