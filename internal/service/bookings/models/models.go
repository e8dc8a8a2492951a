package models

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// DisplayDateFormat формат даты в карточке: "2024년 6월 10일"
const DisplayDateFormat = "2006년 1월 2일"

// BookingCard карточка бронирования для списка
type BookingCard struct {
	Booking     domain.Booking
	StatusLabel string
	CanCancel   bool
	DateLabel   string
	TimeLabel   string
	PriceLabel  string
	StylistName string // пусто, если специалист не назначен
}

// BookingList список бронирований пользователя
type BookingList struct {
	Cards []BookingCard
}

// IsEmpty проверяет, что бронирований нет
func (l *BookingList) IsEmpty() bool {
	return len(l.Cards) == 0
}

// Find ищет карточку по ID бронирования
func (l *BookingList) Find(id int64) (*BookingCard, bool) {
	for i := range l.Cards {
		if l.Cards[i].Booking.ID == id {
			return &l.Cards[i], true
		}
	}
	return nil, false
}

// CancelResult результат отмены
// Refreshed пуст, если повторная загрузка после отмены не удалась
type CancelResult struct {
	Cancelled domain.Booking
	Refreshed *BookingList
}

// FromDomainBooking конвертирует domain модель в карточку
func FromDomainBooking(b domain.Booking) BookingCard {
	card := BookingCard{
		Booking:     b,
		StatusLabel: b.Status.Label(),
		CanCancel:   b.CanBeCancelled(),
		TimeLabel:   b.BookingTime.String(),
		PriceLabel:  domain.FormatPrice(b.TotalPrice),
	}
	if !b.BookingDate.IsZero() {
		card.DateLabel = b.BookingDate.Format(DisplayDateFormat)
	}
	if b.Stylist != nil {
		card.StylistName = b.Stylist.Name
	}
	return card
}

// FromDomainBookings конвертирует список domain моделей
func FromDomainBookings(bookings []domain.Booking) *BookingList {
	cards := make([]BookingCard, 0, len(bookings))
	for _, b := range bookings {
		cards = append(cards, FromDomainBooking(b))
	}
	return &BookingList{Cards: cards}
}
