package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops/models"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/wizard"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

type ShopsService interface {
	Detail(ctx context.Context, shopID int64) (*models.ShopDetail, error)
}

// Wizard мастер бронирования одного черновика
type Wizard interface {
	Start(ctx context.Context, entry wizard.Entry) error
	ReloadStylists(ctx context.Context) error
	SelectStylist(stylistID int64) error
	SelectDate(ctx context.Context, date time.Time) error
	SelectTime(t types.TimeString) error
	Confirm(ctx context.Context) (*domain.Booking, error)
	Snapshot() wizard.Snapshot
	DateOptions() []domain.DateOption
}

// BookingsView показывает список бронирований пользователя
type BookingsView interface {
	Handle(ctx context.Context) error
}

// WizardFactory создает новый мастер на каждый запуск команды
type WizardFactory func() Wizard

type Prompter interface {
	Ask(label string) (string, error)
	Confirm(question string) (bool, error)
	Choose(label string, options []string) (int, error)
}

type Renderer interface {
	Title(format string, v ...interface{})
	Line(format string, v ...interface{})
	Accent(format string, v ...interface{})
	Success(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Muted(format string, v ...interface{})
	Blank()
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
