package create_booking

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Draft domain.BookingDraft
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking domain.Booking
}
