package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// UseCase use case построения сетки слотов специалиста на дату
type UseCase struct {
	client   AvailabilityClient
	grid     Grid
	fallback FallbackRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// fallback может быть nil
func NewUseCase(client AvailabilityClient, grid Grid, fallback FallbackRecorder, logger Logger) *UseCase {
	if fallback == nil {
		fallback = noopRecorder{}
	}
	return &UseCase{
		client:   client,
		grid:     grid,
		fallback: fallback,
		logger:   logger,
	}
}

// Execute выполняет use case получения сетки слотов
// Ошибка API не возвращается: сетка показывается полностью свободной, Response.Degraded = true
// Окончательную проверку доступности выполняет сервер при создании бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.TruncateToDay(req.Date)
	uc.logger.Info("GetAvailableSlots: shop=%d, stylist=%d, date=%s",
		req.ShopID, req.StylistID, date.Format(domain.DateFormat))

	labels, err := generateTimeSlots(uc.grid)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:      date,
		ShopID:    req.ShopID,
		StylistID: req.StylistID,
	}

	records, err := uc.client.GetAvailableTimes(ctx, req.ShopID, req.StylistID, date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: availability fetch failed for stylist=%d date=%s, showing open grid: %v",
			req.StylistID, date.Format(domain.DateFormat), err)
		uc.fallback.RecordAvailabilityFallback()
		resp.Slots = openGrid(labels)
		resp.Degraded = true
		return resp, nil
	}

	resp.Slots = reconcile(labels, records)

	uc.logger.Info("GetAvailableSlots: built %d slots from %d server records for stylist=%d date=%s",
		len(resp.Slots), len(records), req.StylistID, date.Format(domain.DateFormat))
	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}
	if req.StylistID <= 0 {
		return fmt.Errorf("%w: stylistID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
