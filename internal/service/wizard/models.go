package wizard

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Entry точка входа в мастер
// С выбранным специалистом мастер начинает с выбора даты, иначе с выбора специалиста
type Entry struct {
	Shop    *domain.Shop
	Service *domain.Service // может отсутствовать при входе со специалиста
	Stylist *domain.Stylist
}

// Config параметры мастера
type Config struct {
	WindowMonths int // на сколько месяцев вперед можно выбрать дату
	DateListDays int // длина списка быстрого выбора дат
}

// DefaultConfig параметры мастера по умолчанию
func DefaultConfig() Config {
	return Config{
		WindowMonths: domain.DefaultBookingWindowMonths,
		DateListDays: domain.DefaultDateListDays,
	}
}

// Snapshot копия состояния мастера для отображения
type Snapshot struct {
	Step          Step
	Draft         domain.BookingDraft
	Stylists      []domain.Stylist
	Slots         []domain.TimeSlot
	SlotsDegraded bool            // сетка показана без данных сервера
	Err           error           // последняя ошибка для показа пользователю
	Booking       *domain.Booking // созданное бронирование на шаге StepDone
}
