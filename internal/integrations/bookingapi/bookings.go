package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	var booking Booking
	if err := c.doJSON(ctx, http.MethodPost, "/bookings", nil, req, &booking); err != nil {
		return nil, fmt.Errorf("failed to create booking shop_id=%d stylist_id=%d: %w", req.ShopID, req.StylistID, err)
	}

	result, err := booking.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInvalidResponse, booking.ID, err)
	}
	return &result, nil
}

// GetBookings получает бронирования текущего пользователя
func (c *Client) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []Booking
	if err := c.doJSON(ctx, http.MethodGet, "/bookings", nil, nil, &bookings); err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	result := make([]domain.Booking, 0, len(bookings))
	for i := range bookings {
		booking, err := bookings[i].ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInvalidResponse, bookings[i].ID, err)
		}
		result = append(result, booking)
	}
	return result, nil
}

// GetBooking получает одно бронирование
func (c *Client) GetBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	var booking Booking
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, &booking); err != nil {
		return nil, fmt.Errorf("failed to get booking id=%d: %w", bookingID, err)
	}

	result, err := booking.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: booking id=%d: %v", ErrInvalidResponse, booking.ID, err)
	}
	return &result, nil
}

// UpdateBooking обновляет бронирование
// Тело ответа не используется: после изменения вызывающий код перечитывает список
func (c *Client) UpdateBooking(ctx context.Context, bookingID int64, req UpdateBookingRequest) error {
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d", bookingID), nil, req, nil); err != nil {
		return fmt.Errorf("failed to update booking id=%d: %w", bookingID, err)
	}
	return nil
}

// CancelBooking переводит бронирование в статус cancelled
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	return c.UpdateBooking(ctx, bookingID, UpdateBookingRequest{Status: string(domain.StatusCancelled)})
}
