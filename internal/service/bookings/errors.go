package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирования нет в списке пользователя
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCancelDeclined возвращается, когда пользователь не подтвердил отмену
	ErrCancelDeclined = errors.New("cancellation declined")

	// ErrCancelFailed возвращается, когда сервер не принял отмену
	ErrCancelFailed = errors.New("cancellation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при ошибке загрузки списка
	ErrInternal = errors.New("service: internal error")
)
