package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	ShopID    int64     // ID заведения
	StylistID int64     // ID специалиста
	Date      time.Time // Дата (время суток не учитывается)
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date      time.Time
	ShopID    int64
	StylistID int64
	Slots     []domain.TimeSlot // все слоты рабочего дня в каноническом порядке
	// Degraded true, если данные сервера не получены и все слоты показаны свободными
	Degraded bool
}

// Grid рабочие часы и шаг сетки
type Grid struct {
	StartHour           int // первый слот начинается в StartHour:00
	EndHour             int // последний слот заканчивается не позже EndHour:00
	SlotDurationMinutes int
}

// DefaultGrid сетка 09:00 - 19:30 с шагом 30 минут
func DefaultGrid() Grid {
	return Grid{
		StartHour:           domain.DefaultBusinessStartHour,
		EndHour:             domain.DefaultBusinessEndHour,
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
	}
}
