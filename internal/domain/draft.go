package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// ErrDraftIncomplete возвращается, когда в черновике бронирования не заполнены обязательные поля
var ErrDraftIncomplete = errors.New("booking draft is incomplete")

// Названия полей черновика (используются в тексте ошибки)
const (
	DraftFieldShop    = "shop"
	DraftFieldService = "service"
	DraftFieldStylist = "stylist"
	DraftFieldDate    = "date"
	DraftFieldTime    = "time"
)

// BookingDraft черновик бронирования, существует только пока пользователь в мастере
type BookingDraft struct {
	Shop    *Shop
	Service *Service
	Stylist *Stylist
	Date    time.Time        // нулевое значение - дата не выбрана
	Time    types.TimeString // пустое значение - время не выбрано
}

// MissingFields возвращает список незаполненных полей в фиксированном порядке
func (d *BookingDraft) MissingFields() []string {
	missing := make([]string, 0, 5)
	if d.Shop == nil {
		missing = append(missing, DraftFieldShop)
	}
	if d.Service == nil {
		missing = append(missing, DraftFieldService)
	}
	if d.Stylist == nil {
		missing = append(missing, DraftFieldStylist)
	}
	if d.Date.IsZero() {
		missing = append(missing, DraftFieldDate)
	}
	if d.Time.IsZero() {
		missing = append(missing, DraftFieldTime)
	}
	return missing
}

// IsComplete returns true if all five fields are set
func (d *BookingDraft) IsComplete() bool {
	return len(d.MissingFields()) == 0
}

// Validate проверяет, что черновик можно отправить на сервер
func (d *BookingDraft) Validate() error {
	missing := d.MissingFields()
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrDraftIncomplete, strings.Join(missing, ", "))
	}
	if err := d.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrDraftIncomplete, err)
	}
	return nil
}

// TotalPrice возвращает стоимость выбранной услуги (0, если услуга не выбрана)
func (d *BookingDraft) TotalPrice() int64 {
	if d.Service == nil {
		return 0
	}
	return d.Service.Price
}
