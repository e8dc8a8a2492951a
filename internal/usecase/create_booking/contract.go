package create_booking

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// BookingsClient интерфейс клиента API для создания бронирования
type BookingsClient interface {
	CreateBooking(ctx context.Context, req bookingapi.CreateBookingRequest) (*domain.Booking, error)
}

// CreatedRecorder учитывает успешно созданные бронирования
type CreatedRecorder interface {
	RecordBookingCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopRecorder struct{}

func (noopRecorder) RecordBookingCreated() {}
