package shops

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops/models"
)

// Service сервис каталога заведений
type Service struct {
	client ShopsClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(client ShopsClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// List получает список заведений и применяет фильтр по районам
func (s *Service) List(ctx context.Context, req models.ListRequest) (*models.ShopList, error) {
	if err := validateListRequest(req); err != nil {
		return nil, err
	}

	filter := bookingapi.ShopFilter{
		Category: req.Category,
		Search:   req.Search,
	}
	if req.IsNearby() {
		filter.Latitude = req.Latitude
		filter.Longitude = req.Longitude
		filter.Distance = req.Distance
		if filter.Distance <= 0 {
			filter.Distance = domain.DefaultNearbyDistance
		}
	}

	s.logger.Info("List: fetching shops category=%s search=%q nearby=%t", req.Category, req.Search, req.IsNearby())

	shops, err := s.client.GetShops(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to fetch shops: %v", err)
		return nil, fmt.Errorf("%w: List - api error: %v", ErrInternal, err)
	}

	cards := make([]models.ShopCard, 0, len(shops))
	for _, shop := range shops {
		if !shop.InDistrict(req.Districts) {
			continue
		}
		cards = append(cards, models.NewShopCard(shop))
	}

	s.logger.Info("List: fetched %d shops, %d after district filter", len(shops), len(cards))
	return &models.ShopList{
		Title: req.Title(),
		Total: len(shops),
		Cards: cards,
	}, nil
}

// Detail получает заведение, его услуги и специалистов
// Ошибка загрузки специалистов не прерывает показ карточки
func (s *Service) Detail(ctx context.Context, shopID int64) (*models.ShopDetail, error) {
	if shopID <= 0 {
		return nil, fmt.Errorf("%w: shop id must be positive", ErrInvalidInput)
	}

	s.logger.Info("Detail: fetching shop id=%d", shopID)

	shop, err := s.client.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, bookingapi.ErrNotFound) {
			s.logger.Warn("Detail: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("Detail: failed to fetch shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Detail - api error: %v", ErrInternal, err)
	}

	services := shop.Services
	if len(services) == 0 {
		services, err = s.client.GetShopServices(ctx, shopID)
		if err != nil {
			s.logger.Warn("Detail: failed to fetch services for shop id=%d: %v", shopID, err)
			services = nil
		}
	}

	detail := &models.ShopDetail{
		Card:     models.NewShopCard(*shop),
		Services: services,
	}

	stylists, err := s.client.GetStylists(ctx, shopID)
	if err != nil {
		s.logger.Warn("Detail: failed to fetch stylists for shop id=%d: %v", shopID, err)
		detail.StylistsUnavailable = true
	} else {
		detail.Stylists = stylists
	}

	return detail, nil
}

// Districts возвращает список районов для фильтра
func (s *Service) Districts() []string {
	return append([]string(nil), domain.SeoulDistricts...)
}

func validateListRequest(req models.ListRequest) error {
	if req.Category != "" && !req.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be set together", ErrInvalidInput)
	}
	if req.Distance < 0 {
		return fmt.Errorf("%w: distance must not be negative", ErrInvalidInput)
	}
	for _, district := range req.Districts {
		if !isSeoulDistrict(district) {
			return fmt.Errorf("%w: %s", ErrUnknownDistrict, district)
		}
	}
	return nil
}

func isSeoulDistrict(name string) bool {
	for _, district := range domain.SeoulDistricts {
		if district == name {
			return true
		}
	}
	return false
}
