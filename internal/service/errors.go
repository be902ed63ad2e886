package service

import (
	"errors"
	"fmt"

	"shareit/internal/database"
)

// ErrValidation — корень всех ошибок вида "запрос отклонен".
// Граница HTTP проверяет его через errors.Is.
var ErrValidation = errors.New("invalid request")

// ErrConflict — корень ошибок о конфликте состояния.
var ErrConflict = errors.New("conflict")

var (
	ErrItemUnavailable    = fmt.Errorf("%w: item is not available for booking", ErrValidation)
	ErrNotOwner           = fmt.Errorf("%w: only the item owner can decide a booking", ErrValidation)
	ErrAlreadyDecided     = fmt.Errorf("%w: booking is already decided", ErrValidation)
	ErrNoCompletedBooking = fmt.Errorf("%w: no completed booking for this item", ErrValidation)
	ErrEmailTaken         = fmt.Errorf("%w: email already in use", ErrConflict)
)

func notFoundf(format string, args ...any) error {
	args = append(args, database.ErrNotFound)
	return fmt.Errorf(format+": %w", args...)
}
