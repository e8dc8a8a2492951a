package bookings

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// BookingsClient интерфейс клиента API бронирований
type BookingsClient interface {
	GetBookings(ctx context.Context) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id int64) error
}

// ConfirmGate запрашивает у пользователя подтверждение отмены
type ConfirmGate interface {
	ConfirmCancel(booking domain.Booking) bool
}

// ConfirmFunc адаптер функции к ConfirmGate
type ConfirmFunc func(booking domain.Booking) bool

// ConfirmCancel вызывает f(booking)
func (f ConfirmFunc) ConfirmCancel(booking domain.Booking) bool {
	return f(booking)
}

// CancelledRecorder фиксирует отмененные бронирования в метриках
type CancelledRecorder interface {
	RecordBookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopRecorder struct{}

func (noopRecorder) RecordBookingCancelled() {}
