package create_booking

import "errors"

var (
	// ErrIncompleteDraft возвращается, когда в черновике не заполнены обязательные поля
	ErrIncompleteDraft = errors.New("create_booking: booking draft is incomplete")

	// ErrBookingFailed возвращается при любой ошибке сервера, включая занятый слот
	ErrBookingFailed = errors.New("create_booking: booking failed")
)
