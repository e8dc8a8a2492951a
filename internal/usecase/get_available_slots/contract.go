package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// AvailabilityClient интерфейс клиента API для записей о доступности
type AvailabilityClient interface {
	GetAvailableTimes(ctx context.Context, shopID, stylistID int64, date time.Time) ([]bookingapi.AvailableTime, error)
}

// FallbackRecorder учитывает случаи, когда сетка показана без данных сервера
type FallbackRecorder interface {
	RecordAvailabilityFallback()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopRecorder struct{}

func (noopRecorder) RecordAvailabilityFallback() {}
