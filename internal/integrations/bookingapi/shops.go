package bookingapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// GetShops получает список заведений с учетом фильтра
func (c *Client) GetShops(ctx context.Context, filter ShopFilter) ([]domain.Shop, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", string(filter.Category))
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Latitude != nil && filter.Longitude != nil {
		query.Set("latitude", strconv.FormatFloat(*filter.Latitude, 'f', -1, 64))
		query.Set("longitude", strconv.FormatFloat(*filter.Longitude, 'f', -1, 64))
		distance := filter.Distance
		if distance <= 0 {
			distance = domain.DefaultNearbyDistance
		}
		query.Set("distance", strconv.Itoa(distance))
	}

	var shops []Shop
	if err := c.doJSON(ctx, http.MethodGet, "/shops", query, nil, &shops); err != nil {
		return nil, fmt.Errorf("failed to get shops: %w", err)
	}

	result := make([]domain.Shop, 0, len(shops))
	for i := range shops {
		result = append(result, shops[i].ToDomain())
	}
	return result, nil
}

// GetShop получает заведение вместе с услугами
func (c *Client) GetShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	var shop Shop
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/shops/%d", shopID), nil, nil, &shop); err != nil {
		return nil, fmt.Errorf("failed to get shop id=%d: %w", shopID, err)
	}
	result := shop.ToDomain()
	return &result, nil
}

// GetShopServices получает услуги заведения
func (c *Client) GetShopServices(ctx context.Context, shopID int64) ([]domain.Service, error) {
	var services []Service
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/shops/%d/services", shopID), nil, nil, &services); err != nil {
		return nil, fmt.Errorf("failed to get services for shop id=%d: %w", shopID, err)
	}

	result := make([]domain.Service, 0, len(services))
	for i := range services {
		result = append(result, services[i].ToDomain())
	}
	return result, nil
}
