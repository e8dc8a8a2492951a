package list_shops

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops/models"
)

const (
	msgInvalidFilter   = "Некорректные параметры поиска"
	msgUnknownDistrict = "Неизвестный район"
	msgLoadFailed      = "Не удалось загрузить список заведений"
	msgEmpty           = "Заведения не найдены"
	msgShownFormat     = "Показано %d из %d"
)

// Request параметры команды shops
type Request struct {
	Category  string
	Search    string
	Latitude  *float64
	Longitude *float64
	Distance  int
	Districts []string
}

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

// Handle shops [--category|--search|--lat --lng --distance] [--district ...]
func (h *Handler) Handle(ctx context.Context, req Request) error {
	list, err := h.service.List(ctx, models.ListRequest{
		Category:  domain.ShopCategory(req.Category),
		Search:    req.Search,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Distance:  req.Distance,
		Districts: req.Districts,
	})
	if err != nil {
		switch {
		case errors.Is(err, shops.ErrUnknownDistrict):
			h.logger.Warn("shops - Unknown district: %v", err)
			return handlers.Fail(msgUnknownDistrict, err)

		case errors.Is(err, shops.ErrInvalidInput):
			h.logger.Warn("shops - Invalid filter: %v", err)
			return handlers.Fail(msgInvalidFilter, err)

		default:
			h.logger.Error("shops - Failed to list shops: %v", err)
			return handlers.Fail(msgLoadFailed, err)
		}
	}

	h.out.Title("%s", list.Title)
	if len(list.Cards) == 0 {
		h.out.Muted(msgEmpty)
		return nil
	}

	for _, card := range list.Cards {
		h.out.Line("[%d] %s · %s", card.Shop.ID, card.Shop.Name, card.Shop.Category.Label())
		if card.Shop.Address != "" {
			h.out.Muted("    %s", card.Shop.Address)
		}
		h.out.Accent("    ★ %.1f (%d)", card.Rating, card.ReviewCount)
	}
	if len(req.Districts) > 0 {
		h.out.Muted(msgShownFormat, len(list.Cards), list.Total)
	}

	h.logger.Info("shops - Listed %d shops", len(list.Cards))
	return nil
}
