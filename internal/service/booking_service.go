package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

// BookingService владеет жизненным циклом заявок: создание, решение
// владельца, видимость и корзинные выборки.
type BookingService struct {
	bookings domain.BookingRepository
	users    domain.UserRepository
	items    domain.ItemRepository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewBookingService(bookings domain.BookingRepository, users domain.UserRepository, items domain.ItemRepository, eventBus domain.EventPublisher, logger *zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		users:    users,
		items:    items,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateBooking создает заявку в статусе WAITING. Доступность вещи
// проверяется только здесь; при решении владельца она не перечитывается.
func (s *BookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*models.Booking, error) {
	booker, err := s.users.GetUserByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !item.Available {
		return nil, ErrItemUnavailable
	}

	booking := &models.Booking{
		ItemID:     item.ID,
		ItemName:   item.Name,
		OwnerID:    item.OwnerID,
		BookerID:   booker.ID,
		BookerName: booker.Name,
		Start:      start,
		End:        end,
		Status:     models.StatusWaiting,
	}

	if err := s.bookings.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("item_id", item.ID).
		Int64("booker_id", booker.ID).
		Msg("booking created")

	s.publishEvent(events.EventBookingCreated, booking)
	return booking, nil
}

// UpdateBookingStatus — единственный путь смены статуса. Решение
// принимает только владелец вещи, и только один раз.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, actorID, bookingID int64, approve bool) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.OwnerID != actorID {
		return nil, ErrNotOwner
	}

	if !booking.Decide(approve) {
		return nil, ErrAlreadyDecided
	}

	if err := s.bookings.DecideBooking(ctx, bookingID, booking.Status); err != nil {
		if errors.Is(err, database.ErrAlreadyDecided) {
			return nil, ErrAlreadyDecided
		}
		return nil, err
	}
	booking.UpdatedAt = s.now()

	eventType := events.EventBookingRejected
	if approve {
		eventType = events.EventBookingApproved
	}
	s.publishEvent(eventType, booking)

	return booking, nil
}

// GetBookingByID показывает заявку автору или владельцу вещи.
// Остальным отвечаем "не найдено", не раскрывая существование заявки.
func (s *BookingService) GetBookingByID(ctx context.Context, actorID, bookingID int64) (*models.Booking, error) {
	booking, err := s.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.BookerID != actorID && booking.OwnerID != actorID {
		return nil, fmt.Errorf("booking %d: %w", bookingID, database.ErrNotFound)
	}
	return booking, nil
}

// GetUserBookings возвращает заявки пользователя как арендатора,
// отфильтрованные по корзине и отсортированные по началу по убыванию.
func (s *BookingService) GetUserBookings(ctx context.Context, userID int64, state string) ([]*models.Booking, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	return s.bookings.GetBookingsByBooker(ctx, userID, models.ParseStateFilter(state), s.now())
}

// GetOwnerBookings — то же самое по оси владельца вещей.
func (s *BookingService) GetOwnerBookings(ctx context.Context, ownerID int64, state string) ([]*models.Booking, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.bookings.GetBookingsByOwner(ctx, ownerID, models.ParseStateFilter(state), s.now())
}

func (s *BookingService) GetBookingsByDateRange(ctx context.Context, start, end time.Time) ([]*models.Booking, error) {
	return s.bookings.GetBookingsByDateRange(ctx, start, end)
}

func (s *BookingService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %d: %w", userID, database.ErrNotFound)
	}
	return nil
}

func (s *BookingService) publishEvent(eventType string, booking *models.Booking) {
	if s.eventBus == nil {
		return
	}

	payload := events.BookingEventPayload{
		BookingID: booking.ID,
		ItemID:    booking.ItemID,
		ItemName:  booking.ItemName,
		OwnerID:   booking.OwnerID,
		BookerID:  booking.BookerID,
		Status:    string(booking.Status),
		Start:     booking.Start,
		End:       booking.End,
	}

	if err := s.eventBus.PublishJSON(eventType, payload); err != nil {
		s.logger.Error().Err(err).Str("event_type", eventType).Int64("booking_id", booking.ID).Msg("publish event error")
	}
}
