package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidGrid возвращается при некорректных рабочих часах или шаге сетки
	ErrInvalidGrid = errors.New("invalid slot grid")
)
