package service

import (
	"context"
	"time"

	"shareit/internal/domain"
	"shareit/internal/events"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type ItemService struct {
	items    domain.ItemRepository
	users    domain.UserRepository
	bookings domain.BookingRepository
	comments domain.CommentRepository
	requests domain.RequestRepository
	eventBus domain.EventPublisher
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewItemService(items domain.ItemRepository, users domain.UserRepository, bookings domain.BookingRepository, comments domain.CommentRepository, requests domain.RequestRepository, eventBus domain.EventPublisher, logger *zerolog.Logger) *ItemService {
	return &ItemService{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, item *models.Item) (*models.Item, error) {
	owner, err := s.users.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if item.RequestID != 0 {
		if _, err := s.requests.GetRequestByID(ctx, item.RequestID); err != nil {
			return nil, err
		}
	}

	item.OwnerID = owner.ID
	if err := s.items.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("item_id", item.ID).Int64("owner_id", owner.ID).Msg("item created")
	return item, nil
}

// UpdateItem применяет частичное обновление. Редактировать вещь может
// только владелец; для остальных вещь "не найдена".
func (s *ItemService) UpdateItem(ctx context.Context, ownerID, itemID int64, name, description *string, available *bool) (*models.Item, error) {
	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.OwnerID != ownerID {
		return nil, notFoundf("item %d", itemID)
	}

	if name != nil {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	if available != nil {
		item.Available = *available
	}

	if err := s.items.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemByID показывает карточку вещи с комментариями. Даты последнего
// и ближайшего бронирования видит только владелец.
func (s *ItemService) GetItemByID(ctx context.Context, viewerID, itemID int64) (*models.ItemDetails, error) {
	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.GetCommentsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &models.ItemDetails{Item: *item, Comments: comments}
	if item.OwnerID != viewerID {
		return details, nil
	}

	now := s.now()
	lastEnds, err := s.bookings.GetLastBookingEnds(ctx, []int64{item.ID}, now)
	if err != nil {
		return nil, err
	}
	nextStarts, err := s.bookings.GetNextBookingStarts(ctx, []int64{item.ID}, now)
	if err != nil {
		return nil, err
	}
	if last, ok := lastEnds[item.ID]; ok {
		details.LastBooking = &last
	}
	if next, ok := nextStarts[item.ID]; ok {
		details.NextBooking = &next
	}
	return details, nil
}

// GetItemsByOwner возвращает вещи владельца с комментариями и датами
// последнего и ближайшего бронирования.
func (s *ItemService) GetItemsByOwner(ctx context.Context, ownerID int64) ([]*models.ItemDetails, error) {
	if err := s.checkUserExists(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.GetItemsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]*models.ItemDetails, 0, len(items))
	if len(items) == 0 {
		return details, nil
	}

	itemIDs := make([]int64, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	now := s.now()
	lastEnds, err := s.bookings.GetLastBookingEnds(ctx, itemIDs, now)
	if err != nil {
		return nil, err
	}
	nextStarts, err := s.bookings.GetNextBookingStarts(ctx, itemIDs, now)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		d := &models.ItemDetails{Item: *item}
		if last, ok := lastEnds[item.ID]; ok {
			d.LastBooking = &last
		}
		if next, ok := nextStarts[item.ID]; ok {
			d.NextBooking = &next
		}
		comments, err := s.comments.GetCommentsByItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		d.Comments = comments
		details = append(details, d)
	}
	return details, nil
}

func (s *ItemService) SearchItems(ctx context.Context, text string) ([]*models.Item, error) {
	return s.items.SearchItems(ctx, text)
}

// AddComment пропускает только арендаторов с подтвержденной и уже
// завершившейся арендой вещи.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, text string) (*models.Comment, error) {
	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	completed, err := s.bookings.HasCompletedBooking(ctx, item.ID, author.ID, s.now())
	if err != nil {
		return nil, err
	}
	if !completed {
		return nil, ErrNoCompletedBooking
	}

	comment := &models.Comment{
		Text:       text,
		ItemID:     item.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Created:    s.now(),
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		payload := events.CommentEventPayload{
			CommentID: comment.ID,
			ItemID:    item.ID,
			AuthorID:  author.ID,
		}
		if err := s.eventBus.PublishJSON(events.EventCommentAdded, payload); err != nil {
			s.logger.Error().Err(err).Int64("comment_id", comment.ID).Msg("publish event error")
		}
	}

	return comment, nil
}

func (s *ItemService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("user %d", userID)
	}
	return nil
}
