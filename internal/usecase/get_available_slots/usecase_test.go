package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

type stubClient struct {
	records []bookingapi.AvailableTime
	err     error
	calls   int
}

func (c *stubClient) GetAvailableTimes(context.Context, int64, int64, time.Time) ([]bookingapi.AvailableTime, error) {
	c.calls++
	return c.records, c.err
}

type countingRecorder struct{ n int }

func (r *countingRecorder) RecordAvailabilityFallback() { r.n++ }

var testDate = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func TestGenerateTimeSlots_DefaultGrid(t *testing.T) {
	slots, err := generateTimeSlots(DefaultGrid())
	require.NoError(t, err)
	require.Len(t, slots, 22)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("09:30"), slots[1])
	assert.Equal(t, types.TimeString("19:30"), slots[21])
}

func TestGenerateTimeSlots_InvalidGrid(t *testing.T) {
	_, err := generateTimeSlots(Grid{StartHour: 20, EndHour: 9, SlotDurationMinutes: 30})
	assert.True(t, errors.Is(err, ErrInvalidGrid))

	_, err = generateTimeSlots(Grid{StartHour: 9, EndHour: 20})
	assert.True(t, errors.Is(err, ErrInvalidGrid))
}

func TestExecute_ReconcilesServerRecords(t *testing.T) {
	client := &stubClient{records: []bookingapi.AvailableTime{
		{StartTime: "09:00", IsAvailable: false, ID: ptr.Ptr(int64(101))},
		{StartTime: "10:30", IsAvailable: true, ID: ptr.Ptr(int64(102))},
	}}
	uc := NewUseCase(client, DefaultGrid(), nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ShopID: 7, StylistID: 3, Date: testDate})
	require.NoError(t, err)
	assert.False(t, resp.Degraded)
	require.Len(t, resp.Slots, 22)

	first := resp.Slots[0]
	assert.Equal(t, types.TimeString("09:00"), first.Time)
	assert.False(t, first.IsAvailable)
	assert.Equal(t, "101", first.Key())

	assert.True(t, resp.Slots[1].IsAvailable)
	assert.Equal(t, "temp-09:30", resp.Slots[1].Key())

	assert.True(t, resp.Slots[3].IsAvailable)
	assert.Equal(t, "102", resp.Slots[3].Key())

	for _, slot := range resp.Slots[4:] {
		assert.True(t, slot.IsAvailable)
		assert.False(t, slot.IsPersisted())
	}
}

func TestExecute_FirstMatchWinsAndOffGridIgnored(t *testing.T) {
	client := &stubClient{records: []bookingapi.AvailableTime{
		{StartTime: "11:00", IsAvailable: false, ID: ptr.Ptr(int64(1))},
		{StartTime: "11:00", IsAvailable: true, ID: ptr.Ptr(int64(2))},
		{StartTime: "08:00", IsAvailable: false, ID: ptr.Ptr(int64(3))},
		{StartTime: "11:00:00", IsAvailable: false, ID: ptr.Ptr(int64(4))},
		{StartTime: "12:15", IsAvailable: false, ID: ptr.Ptr(int64(5))},
	}}
	uc := NewUseCase(client, DefaultGrid(), nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ShopID: 7, StylistID: 3, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 22)

	slot, ok := domain.FindSlot(resp.Slots, "11:00")
	require.True(t, ok)
	assert.False(t, slot.IsAvailable)
	assert.Equal(t, "1", slot.Key())

	unavailable := 0
	for _, s := range resp.Slots {
		if !s.IsAvailable {
			unavailable++
		}
	}
	assert.Equal(t, 1, unavailable)
}

func TestExecute_FetchFailureShowsOpenGrid(t *testing.T) {
	client := &stubClient{err: bookingapi.ErrInternal}
	recorder := &countingRecorder{}
	uc := NewUseCase(client, DefaultGrid(), recorder, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ShopID: 7, StylistID: 3, Date: testDate})
	require.NoError(t, err)
	assert.True(t, resp.Degraded)
	assert.Equal(t, 1, recorder.n)
	require.Len(t, resp.Slots, 22)
	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable)
		assert.Equal(t, "temp-"+slot.Time.String(), slot.Key())
	}
}

func TestExecute_CustomGrid(t *testing.T) {
	uc := NewUseCase(&stubClient{}, Grid{StartHour: 10, EndHour: 12, SlotDurationMinutes: 60}, nil, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ShopID: 1, StylistID: 1, Date: testDate.Add(15 * time.Hour)})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("11:00"), resp.Slots[1].Time)
	assert.Equal(t, testDate, resp.Date)
}

func TestExecute_InvalidInputSkipsFetch(t *testing.T) {
	client := &stubClient{}
	uc := NewUseCase(client, DefaultGrid(), nil, logger.NewNop())

	tests := []struct {
		name string
		req  *Request
	}{
		{"nil request", nil},
		{"no shop", &Request{StylistID: 3, Date: testDate}},
		{"no stylist", &Request{ShopID: 7, Date: testDate}},
		{"no date", &Request{ShopID: 7, StylistID: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
	assert.Equal(t, 0, client.calls)
}
