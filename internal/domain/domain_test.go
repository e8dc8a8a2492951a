package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

func TestIsDateSelectable(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday", time.Date(2024, 6, 9, 23, 59, 0, 0, time.UTC), false},
		{"today earlier hour", time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), true},
		{"tomorrow", time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), true},
		{"exactly one month", time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), true},
		{"one month plus a day", time.Date(2024, 7, 11, 0, 0, 0, 0, time.UTC), false},
		{"far past", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"zero date", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDateSelectable(tt.date, now, DefaultBookingWindowMonths))
		})
	}
}

func TestIsDateSelectable_AllDaysOutsideWindow(t *testing.T) {
	now := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	// 31 января + 1 месяц = 29 февраля (високосный год)
	assert.True(t, IsDateSelectable(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), now, 1))
	assert.False(t, IsDateSelectable(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), now, 1))

	for i := 1; i <= 60; i++ {
		assert.False(t, IsDateSelectable(now.AddDate(0, 0, -i), now, 1), "day -%d must be disabled", i)
	}
}

func TestAddMonthsClamped(t *testing.T) {
	got := AddMonthsClamped(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), 1)
	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), got)

	got = AddMonthsClamped(time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC), 1)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDateOptions(t *testing.T) {
	// 2024-06-14 - пятница
	now := time.Date(2024, 6, 14, 18, 0, 0, 0, time.UTC)

	options := DateOptions(now, DefaultDateListDays)
	require.Len(t, options, 14)

	assert.True(t, options[0].IsToday)
	assert.True(t, options[1].IsTomorrow)
	assert.True(t, options[1].IsWeekend)
	assert.True(t, options[2].IsWeekend)
	assert.False(t, options[3].IsWeekend)
	assert.Equal(t, time.Date(2024, 6, 27, 0, 0, 0, 0, time.UTC), options[13].Date)
}

func TestBookingDraft_Validate(t *testing.T) {
	complete := BookingDraft{
		Shop:    &Shop{ID: 7},
		Service: &Service{ID: 2, Price: 30000},
		Stylist: &Stylist{ID: 3},
		Date:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Time:    "10:30",
	}
	require.NoError(t, complete.Validate())
	assert.True(t, complete.IsComplete())
	assert.Equal(t, int64(30000), complete.TotalPrice())

	tests := []struct {
		name   string
		mutate func(d *BookingDraft)
		field  string
	}{
		{"no shop", func(d *BookingDraft) { d.Shop = nil }, DraftFieldShop},
		{"no service", func(d *BookingDraft) { d.Service = nil }, DraftFieldService},
		{"no stylist", func(d *BookingDraft) { d.Stylist = nil }, DraftFieldStylist},
		{"no date", func(d *BookingDraft) { d.Date = time.Time{} }, DraftFieldDate},
		{"no time", func(d *BookingDraft) { d.Time = "" }, DraftFieldTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := complete
			tt.mutate(&draft)

			err := draft.Validate()
			assert.True(t, errors.Is(err, ErrDraftIncomplete))
			assert.Equal(t, []string{tt.field}, draft.MissingFields())
		})
	}
}

func TestBookingStatus_CanBeCancelled(t *testing.T) {
	assert.True(t, StatusPending.CanBeCancelled())
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.False(t, StatusCancelled.CanBeCancelled())
	assert.False(t, StatusCompleted.CanBeCancelled())
	assert.False(t, BookingStatus("unknown").CanBeCancelled())
}

func TestTimeSlot_Key(t *testing.T) {
	persisted := TimeSlot{Time: "09:00", RecordID: ptr.Ptr(int64(101))}
	synthetic := TimeSlot{Time: "09:30", IsAvailable: true}

	assert.Equal(t, "101", persisted.Key())
	assert.True(t, persisted.IsPersisted())
	assert.Equal(t, "temp-09:30", synthetic.Key())
	assert.False(t, synthetic.IsPersisted())
}

func TestPseudoRating(t *testing.T) {
	assert.Equal(t, 3.5, PseudoRating(1))
	assert.Equal(t, 3.5, PseudoRating(1000))
	assert.Equal(t, 4.3, PseudoRating(500))
	assert.Equal(t, 5.0, PseudoRating(999))
	assert.Equal(t, PseudoRating(42), PseudoRating(42))

	assert.Equal(t, 17, PseudoReviewCount(1))
	assert.Equal(t, 61, PseudoReviewCount(7))
}

func TestStylist_DisplayRating(t *testing.T) {
	assert.Equal(t, DefaultStylistRating, (&Stylist{}).DisplayRating())
	assert.Equal(t, 4.8, (&Stylist{Rating: 4.8}).DisplayRating())
	assert.Equal(t, "김", (&Stylist{Name: "김민지"}).Initial())
}

func TestShop_InDistrict(t *testing.T) {
	shop := Shop{Address: "서울특별시 강남구 테헤란로 123"}

	assert.True(t, shop.InDistrict(nil))
	assert.True(t, shop.InDistrict([]string{"마포구", "강남구"}))
	assert.False(t, shop.InDistrict([]string{"마포구"}))
	assert.False(t, (&Shop{}).InDistrict([]string{"강남구"}))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "12,000원", FormatPrice(12000))
	assert.Equal(t, "500원", FormatPrice(500))
}
