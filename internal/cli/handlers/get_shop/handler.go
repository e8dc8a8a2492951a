package get_shop

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops"
)

const (
	msgInvalidShopID       = "Некорректный ID заведения"
	msgNotFound            = "Заведение не найдено"
	msgLoadFailed          = "Не удалось загрузить информацию о заведении"
	msgServices            = "Услуги"
	msgNoServices          = "Услуги пока не добавлены"
	msgStylists            = "Специалисты"
	msgNoStylists          = "Специалисты пока не добавлены"
	msgStylistsUnavailable = "Не удалось загрузить специалистов, попробуйте позже"
	msgBookHintFormat      = "Записаться: book --shop %d --service <id> или --stylist <id>"
)

type Handler struct {
	service ShopsService
	out     Renderer
	logger  Logger
}

func NewHandler(service ShopsService, out Renderer, logger Logger) *Handler {
	return &Handler{
		service: service,
		out:     out,
		logger:  logger,
	}
}

// Handle shop <id>
func (h *Handler) Handle(ctx context.Context, rawID string) error {
	shopID, err := handlers.ParseID(rawID)
	if err != nil {
		h.logger.Warn("shop - Invalid shop ID %q: %v", rawID, err)
		return handlers.Fail(msgInvalidShopID, err)
	}

	detail, err := h.service.Detail(ctx, shopID)
	if err != nil {
		switch {
		case errors.Is(err, shops.ErrShopNotFound):
			h.logger.Warn("shop - Shop not found: shop_id=%d", shopID)
			return handlers.Fail(msgNotFound, err)

		case errors.Is(err, shops.ErrInvalidInput):
			return handlers.Fail(msgInvalidShopID, err)

		default:
			h.logger.Error("shop - Failed to load shop: shop_id=%d, error=%v", shopID, err)
			return handlers.Fail(msgLoadFailed, err)
		}
	}

	shop := detail.Card.Shop
	h.out.Title("%s", shop.Name)
	h.out.Line("%s · ★ %.1f (%d)", shop.Category.Label(), detail.Card.Rating, detail.Card.ReviewCount)
	if shop.Address != "" {
		h.out.Line("%s", shop.Address)
	}
	if shop.Phone != "" {
		h.out.Line("%s", shop.Phone)
	}
	if shop.Description != "" {
		h.out.Muted("%s", shop.Description)
	}
	h.out.Muted("%s", detail.Card.CoverImage)

	h.out.Blank()
	h.out.Title(msgServices)
	if len(detail.Services) == 0 {
		h.out.Muted(msgNoServices)
	}
	for _, service := range detail.Services {
		h.out.Line("  [%d] %s", service.ID, service.Name)
		h.out.Accent("      %s · %d мин", domain.FormatPrice(service.Price), service.DurationMinutes)
	}

	h.out.Blank()
	h.out.Title(msgStylists)
	switch {
	case detail.StylistsUnavailable:
		h.out.Warn(msgStylistsUnavailable)
	case len(detail.Stylists) == 0:
		h.out.Muted(msgNoStylists)
	}
	for _, stylist := range detail.Stylists {
		h.out.Line("  [%d] %s · ★ %.1f", stylist.ID, stylist.Name, stylist.DisplayRating())
		if stylist.Specialty != "" {
			h.out.Muted("      %s, опыт %d лет", stylist.Specialty, stylist.ExperienceYears)
		}
	}

	h.out.Blank()
	h.out.Muted(msgBookHintFormat, shop.ID)

	h.logger.Info("shop - Shown shop_id=%d", shopID)
	return nil
}
