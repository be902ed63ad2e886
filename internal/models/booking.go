package models

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID         int64         `json:"id"`
	ItemID     int64         `json:"item_id"`
	ItemName   string        `json:"item_name"`
	OwnerID    int64         `json:"owner_id"`
	BookerID   int64         `json:"booker_id"`
	BookerName string        `json:"booker_name"`
	Start      time.Time     `json:"start"`
	End        time.Time     `json:"end"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Decide переводит заявку из WAITING в терминальный статус.
// Возвращает false, если заявка уже обработана.
func (b *Booking) Decide(approve bool) bool {
	if b.Status != StatusWaiting {
		return false
	}
	if approve {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}
	return true
}

// StateFilter выбирает временную или статусную корзину для списков заявок.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

// ParseStateFilter разбирает токен без учета регистра.
// Неизвестный токен трактуется как ALL.
func ParseStateFilter(raw string) StateFilter {
	switch StateFilter(strings.ToUpper(strings.TrimSpace(raw))) {
	case FilterCurrent:
		return FilterCurrent
	case FilterPast:
		return FilterPast
	case FilterFuture:
		return FilterFuture
	case FilterWaiting:
		return FilterWaiting
	case FilterRejected:
		return FilterRejected
	default:
		return FilterAll
	}
}
