package create_booking

import (
	"context"
	"fmt"
)

// UseCase use case отправки черновика бронирования
type UseCase struct {
	client   BookingsClient
	recorder CreatedRecorder
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// recorder может быть nil
func NewUseCase(client BookingsClient, recorder CreatedRecorder, logger Logger) *UseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &UseCase{
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

// Execute выполняет use case создания бронирования
// Выполняется ровно один запрос POST /bookings, повторов нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Локальная проверка черновика, без обращения к серверу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	payload := toCreateRequest(&req.Draft)
	uc.logger.Info("CreateBooking: shop=%d, service=%d, stylist=%d, date=%s, time=%s",
		payload.ShopID, payload.ServiceID, payload.StylistID, payload.BookingDate, payload.BookingTime)

	// 2. Отправка на сервер, сервер окончательно проверяет доступность слота
	booking, err := uc.client.CreateBooking(ctx, payload)
	if err != nil {
		uc.logger.Error("CreateBooking: server rejected booking for stylist=%d at %s %s: %v",
			payload.StylistID, payload.BookingDate, payload.BookingTime, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingFailed, err)
	}

	uc.recorder.RecordBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	return &Response{Booking: *booking}, nil
}
