package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

const (
	msgTitle         = "Мои бронирования"
	msgLoadFailed    = "Не удалось загрузить список бронирований"
	msgEmpty         = "У вас пока нет бронирований"
	msgCancelHintFmt = "    Отменить: cancel %d"
)

type Handler struct {
	service BookingService
	out     Renderer
	logger  Logger
}

func NewHandler(service BookingService, out Renderer, logger Logger) *Handler {
	return &Handler{
		service: service,
		out:     out,
		logger:  logger,
	}
}

// Handle bookings
func (h *Handler) Handle(ctx context.Context) error {
	list, err := h.service.List(ctx)
	if err != nil {
		h.logger.Error("bookings - Failed to list bookings: %v", err)
		return handlers.Fail(msgLoadFailed, err)
	}

	h.out.Title(msgTitle)
	if list.IsEmpty() {
		h.out.Muted(msgEmpty)
		return nil
	}

	for i, card := range list.Cards {
		if i > 0 {
			h.out.Blank()
		}
		PrintCard(h.out, card)
		if card.CanCancel {
			h.out.Muted(msgCancelHintFmt, card.Booking.ID)
		}
	}

	h.logger.Info("bookings - Listed %d bookings", len(list.Cards))
	return nil
}

// PrintCard выводит карточку бронирования
func PrintCard(out Renderer, card models.BookingCard) {
	b := card.Booking
	out.Line("#%d %s · %s [%s]", b.ID, b.Shop.Name, b.Service.Name, card.StatusLabel)
	if card.StylistName != "" {
		out.Line("    %s %s · %s", card.DateLabel, card.TimeLabel, card.StylistName)
	} else {
		out.Line("    %s %s", card.DateLabel, card.TimeLabel)
	}
	out.Accent("    %s", card.PriceLabel)
}
