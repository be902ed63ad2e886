package models

import "time"

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	OwnerID     int64     `json:"owner_id"`
	// RequestID связывает вещь с запросом, по которому она добавлена. 0 — без запроса.
	RequestID int64     `json:"request_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ItemDetails дополняет вещь комментариями и, для владельца,
// датами последнего и ближайшего бронирования.
type ItemDetails struct {
	Item
	LastBooking *time.Time `json:"last_booking,omitempty"`
	NextBooking *time.Time `json:"next_booking,omitempty"`
	Comments    []*Comment `json:"comments"`
}
