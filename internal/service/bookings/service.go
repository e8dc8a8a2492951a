package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
)

// Service сервис списка бронирований пользователя
type Service struct {
	client   BookingsClient
	recorder CancelledRecorder
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
// recorder может быть nil
func NewService(client BookingsClient, recorder CancelledRecorder, logger Logger) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

// List получает бронирования текущего пользователя
func (s *Service) List(ctx context.Context) (*models.BookingList, error) {
	s.logger.Info("List: fetching bookings")

	bookings, err := s.client.GetBookings(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: List - api error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookings(bookings), nil
}

// Cancel отменяет бронирование после подтверждения пользователем
// Без подтверждения или для неотменяемого статуса запрос не отправляется
// После успешной отмены список загружается один раз заново
func (s *Service) Cancel(ctx context.Context, booking domain.Booking, gate ConfirmGate) (*models.CancelResult, error) {
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d has status %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: status %s", ErrCannotCancel, booking.Status)
	}
	if gate == nil || !gate.ConfirmCancel(booking) {
		s.logger.Info("Cancel: booking id=%d, cancellation declined", booking.ID)
		return nil, ErrCancelDeclined
	}

	if err := s.client.CancelBooking(ctx, booking.ID); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: id=%d: %v", ErrCancelFailed, booking.ID, err)
	}
	s.recorder.RecordBookingCancelled()
	s.logger.Info("Cancel: booking id=%d cancelled", booking.ID)

	cancelled := booking
	cancelled.Status = domain.StatusCancelled
	result := &models.CancelResult{Cancelled: cancelled}

	refreshed, err := s.List(ctx)
	if err != nil {
		s.logger.Warn("Cancel: booking id=%d cancelled but refetch failed: %v", booking.ID, err)
		return result, nil
	}
	result.Refreshed = refreshed
	return result, nil
}

// CancelByID находит бронирование в свежем списке и отменяет его
func (s *Service) CancelByID(ctx context.Context, id int64, gate ConfirmGate) (*models.CancelResult, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	card, ok := list.Find(id)
	if !ok {
		s.logger.Warn("CancelByID: booking id=%d not found in user list", id)
		return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
	}

	return s.Cancel(ctx, card.Booking, gate)
}
