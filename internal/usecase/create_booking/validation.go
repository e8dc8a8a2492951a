package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// validateRequest проверяет черновик до обращения к серверу
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrIncompleteDraft)
	}
	if err := req.Draft.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrIncompleteDraft, err)
	}
	return nil
}

// toCreateRequest формирует тело POST /bookings из заполненного черновика
func toCreateRequest(draft *domain.BookingDraft) bookingapi.CreateBookingRequest {
	return bookingapi.CreateBookingRequest{
		ShopID:      draft.Shop.ID,
		ServiceID:   draft.Service.ID,
		StylistID:   draft.Stylist.ID,
		BookingDate: draft.Date.Format(domain.DateFormat),
		BookingTime: draft.Time.String(),
	}
}
