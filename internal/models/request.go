package models

import "time"

// ItemRequest — запрос пользователя на вещь, которой еще нет в каталоге.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"requestor_id"`
	Created     time.Time `json:"created"`
}

// RequestDetails дополняет запрос вещами, добавленными в ответ на него.
type RequestDetails struct {
	ItemRequest
	Items []*Item `json:"items"`
}
