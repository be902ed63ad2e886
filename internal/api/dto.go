package api

import (
	"time"

	"shareit/internal/models"
)

type userShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemShort struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type bookingResponse struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status string    `json:"status"`
	Booker userShort `json:"booker"`
	Item   itemShort `json:"item"`
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: string(b.Status),
		Booker: userShort{ID: b.BookerID, Name: b.BookerName},
		Item:   itemShort{ID: b.ItemID, Name: b.ItemName},
	}
}

func toBookingResponses(bookings []*models.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

type userResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

type commentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

func toCommentResponses(comments []*models.Comment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentResponse{ID: c.ID, Text: c.Text, AuthorName: c.AuthorName, Created: c.Created})
	}
	return out
}

type itemResponse struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   int64             `json:"request_id,omitempty"`
	LastBooking *time.Time        `json:"last_booking,omitempty"`
	NextBooking *time.Time        `json:"next_booking,omitempty"`
	Comments    []commentResponse `json:"comments,omitempty"`
}

func toItemResponse(i *models.Item) itemResponse {
	return itemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
	}
}

func toItemDetailsResponse(d *models.ItemDetails) itemResponse {
	resp := toItemResponse(&d.Item)
	resp.LastBooking = d.LastBooking
	resp.NextBooking = d.NextBooking
	resp.Comments = toCommentResponses(d.Comments)
	return resp
}

func toItemResponses(items []*models.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, toItemResponse(i))
	}
	return out
}

type requestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []itemResponse `json:"items"`
}

func toRequestDetailsResponse(d *models.RequestDetails) requestResponse {
	return requestResponse{
		ID:          d.ID,
		Description: d.Description,
		Created:     d.Created,
		Items:       toItemResponses(d.Items),
	}
}
