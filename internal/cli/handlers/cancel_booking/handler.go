package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "Некорректный ID бронирования"
	msgNotFound         = "Бронирование не найдено"
	msgCannotCancel     = "Это бронирование нельзя отменить"
	msgCancelFailed     = "Не удалось отменить бронирование"
	msgLoadFailed       = "Не удалось загрузить список бронирований"
	msgDeclined         = "Отмена не подтверждена"
	msgCancelledFormat  = "Бронирование #%d отменено"
	msgActiveFormat     = "Активных бронирований: %d"
	msgConfirmFormat    = "Отменить бронирование #%d (%s, %s %s)?"
)

type Handler struct {
	service  BookingService
	prompter Prompter
	out      Renderer
	logger   Logger
}

func NewHandler(service BookingService, prompter Prompter, out Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		prompter: prompter,
		out:      out,
		logger:   logger,
	}
}

// Handle cancel <id> [--yes]
func (h *Handler) Handle(ctx context.Context, rawID string, yes bool) error {
	bookingID, err := handlers.ParseID(rawID)
	if err != nil {
		h.logger.Warn("cancel - Invalid booking ID %q: %v", rawID, err)
		return handlers.Fail(msgInvalidBookingID, err)
	}

	result, err := h.service.CancelByID(ctx, bookingID, h.gate(yes))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCancelDeclined):
			h.logger.Info("cancel - Declined by user: booking_id=%d", bookingID)
			h.out.Muted(msgDeclined)
			return nil

		case errors.Is(err, bookings.ErrInvalidInput):
			return handlers.Fail(msgInvalidBookingID, err)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("cancel - Booking not found: booking_id=%d", bookingID)
			return handlers.Fail(msgNotFound, err)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("cancel - Cannot cancel: booking_id=%d", bookingID)
			return handlers.Fail(msgCannotCancel, err)

		case errors.Is(err, bookings.ErrCancelFailed):
			h.logger.Error("cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			return handlers.Fail(msgCancelFailed, err)

		default:
			h.logger.Error("cancel - Failed to load bookings: %v", err)
			return handlers.Fail(msgLoadFailed, err)
		}
	}

	h.out.Success(msgCancelledFormat, result.Cancelled.ID)
	if result.Refreshed != nil {
		h.out.Muted(msgActiveFormat, countActive(result.Refreshed))
	}

	h.logger.Info("cancel - Booking cancelled: booking_id=%d", bookingID)
	return nil
}

func (h *Handler) gate(yes bool) bookings.ConfirmGate {
	return bookings.ConfirmFunc(func(b domain.Booking) bool {
		if yes {
			return true
		}
		question := fmt.Sprintf(msgConfirmFormat, b.ID, b.Shop.Name,
			b.BookingDate.Format(domain.DateFormat), b.BookingTime.String())
		ok, err := h.prompter.Confirm(question)
		if err != nil {
			h.logger.Warn("cancel - Confirmation aborted: %v", err)
			return false
		}
		return ok
	})
}

func countActive(list *models.BookingList) int {
	n := 0
	for _, card := range list.Cards {
		if card.Booking.IsActive() {
			n++
		}
	}
	return n
}
