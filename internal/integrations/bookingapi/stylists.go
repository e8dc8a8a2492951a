package bookingapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// GetStylists получает специалистов заведения
func (c *Client) GetStylists(ctx context.Context, shopID int64) ([]domain.Stylist, error) {
	var stylists []Stylist
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/shops/%d/stylists", shopID), nil, nil, &stylists); err != nil {
		return nil, fmt.Errorf("failed to get stylists for shop id=%d: %w", shopID, err)
	}

	result := make([]domain.Stylist, 0, len(stylists))
	for i := range stylists {
		result = append(result, stylists[i].ToDomain())
	}
	return result, nil
}

// GetStylist получает одного специалиста заведения
func (c *Client) GetStylist(ctx context.Context, shopID, stylistID int64) (*domain.Stylist, error) {
	var stylist Stylist
	path := fmt.Sprintf("/shops/%d/stylists/%d", shopID, stylistID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &stylist); err != nil {
		return nil, fmt.Errorf("failed to get stylist id=%d of shop id=%d: %w", stylistID, shopID, err)
	}
	result := stylist.ToDomain()
	return &result, nil
}

// GetAvailableTimes получает записи о доступности слотов специалиста на дату
// Сервер может вернуть только часть слотов сетки, сопоставление делает вызывающий код
func (c *Client) GetAvailableTimes(ctx context.Context, shopID, stylistID int64, date time.Time) ([]AvailableTime, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))

	var times []AvailableTime
	path := fmt.Sprintf("/shops/%d/stylists/%d/available_times", shopID, stylistID)
	if err := c.doJSON(ctx, http.MethodGet, path, query, nil, &times); err != nil {
		return nil, fmt.Errorf("failed to get available times for stylist id=%d date=%s: %w",
			stylistID, date.Format(domain.DateFormat), err)
	}
	return times, nil
}
