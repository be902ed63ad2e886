package service

import (
	"context"
	"time"

	"shareit/internal/domain"
	"shareit/internal/models"

	"github.com/rs/zerolog"
)

type RequestService struct {
	requests domain.RequestRepository
	items    domain.ItemRepository
	users    domain.UserRepository
	logger   *zerolog.Logger
	now      func() time.Time
}

func NewRequestService(requests domain.RequestRepository, items domain.ItemRepository, users domain.UserRepository, logger *zerolog.Logger) *RequestService {
	return &RequestService{
		requests: requests,
		items:    items,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *RequestService) CreateRequest(ctx context.Context, requestorID int64, description string) (*models.ItemRequest, error) {
	requestor, err := s.users.GetUserByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	request := &models.ItemRequest{
		Description: description,
		RequestorID: requestor.ID,
		Created:     s.now(),
	}
	if err := s.requests.CreateRequest(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("request_id", request.ID).Int64("requestor_id", requestor.ID).Msg("item request created")
	return request, nil
}

// GetUserRequests возвращает запросы пользователя вместе с вещами,
// добавленными в ответ на каждый из них.
func (s *RequestService) GetUserRequests(ctx context.Context, userID int64) ([]*models.RequestDetails, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetRequestsByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// GetAllRequests возвращает запросы других пользователей.
func (s *RequestService) GetAllRequests(ctx context.Context, userID int64) ([]*models.RequestDetails, error) {
	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetRequestsForOthers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *RequestService) GetRequestByID(ctx context.Context, requestID int64) (*models.RequestDetails, error) {
	request, err := s.requests.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.GetItemsByRequestIDs(ctx, []int64{requestID})
	if err != nil {
		return nil, err
	}
	return &models.RequestDetails{ItemRequest: *request, Items: items}, nil
}

func (s *RequestService) attachItems(ctx context.Context, requests []*models.ItemRequest) ([]*models.RequestDetails, error) {
	details := make([]*models.RequestDetails, 0, len(requests))
	if len(requests) == 0 {
		return details, nil
	}

	requestIDs := make([]int64, len(requests))
	for i, r := range requests {
		requestIDs[i] = r.ID
	}

	items, err := s.items.GetItemsByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]*models.Item)
	for _, item := range items {
		byRequest[item.RequestID] = append(byRequest[item.RequestID], item)
	}

	for _, r := range requests {
		d := &models.RequestDetails{ItemRequest: *r, Items: byRequest[r.ID]}
		if d.Items == nil {
			d.Items = []*models.Item{}
		}
		details = append(details, d)
	}
	return details, nil
}

func (s *RequestService) checkUserExists(ctx context.Context, userID int64) error {
	exists, err := s.users.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundf("user %d", userID)
	}
	return nil
}
