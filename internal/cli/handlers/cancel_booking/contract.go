package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

type BookingService interface {
	CancelByID(ctx context.Context, id int64, gate bookings.ConfirmGate) (*models.CancelResult, error)
}

type Prompter interface {
	Confirm(question string) (bool, error)
}

type Renderer interface {
	Success(format string, v ...interface{})
	Muted(format string, v ...interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
