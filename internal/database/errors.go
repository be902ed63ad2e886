package database

import "errors"

var (
	// ErrNotFound возвращается, когда запрошенная запись отсутствует.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken возвращается при нарушении уникальности email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrAlreadyDecided возвращается, когда статус заявки уже не WAITING.
	// Это же срабатывает у проигравшего гонку конкурентного решения.
	ErrAlreadyDecided = errors.New("booking already decided")
)
