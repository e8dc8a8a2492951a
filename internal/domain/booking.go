package domain

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

var statusLabels = map[BookingStatus]string{
	StatusPending:   "Ожидает подтверждения",
	StatusConfirmed: "Подтверждено",
	StatusCancelled: "Отменено",
	StatusCompleted: "Завершено",
}

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label возвращает название статуса для пользователя
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// CanBeCancelled returns true if the booking can be cancelled
// Переход в cancelled клиент запрашивает только из pending и confirmed
func (s BookingStatus) CanBeCancelled() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking represents a booking stored on the server (read copy)
type Booking struct {
	ID          int64
	Shop        Shop
	Service     Service
	Stylist     *Stylist // может отсутствовать
	BookingDate time.Time
	BookingTime types.TimeString
	TotalPrice  int64
	Status      BookingStatus
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanBeCancelled()
}

// IsActive returns true if the booking is neither cancelled nor completed
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
