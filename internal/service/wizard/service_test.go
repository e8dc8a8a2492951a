package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type stubStylists struct {
	stylists []domain.Stylist
	err      error
	calls    int
}

func (s *stubStylists) GetStylists(context.Context, int64) ([]domain.Stylist, error) {
	s.calls++
	return s.stylists, s.err
}

// stubSlots отдает сетку, где занят слот, совпадающий с днем месяца (для различения дат)
type stubSlots struct {
	mu    sync.Mutex
	calls []*get_available_slots.Request
	// gate, если задан, блокирует ответ для указанной даты до закрытия канала
	gateDate time.Time
	gate     chan struct{}
	started  chan struct{}
}

func (s *stubSlots) Execute(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	gate := s.gate
	gated := gate != nil && req.Date.Equal(s.gateDate)
	s.mu.Unlock()

	if gated {
		close(s.started)
		<-gate
	}

	slots := []domain.TimeSlot{
		{Time: "09:00", IsAvailable: false, RecordID: ptr.Ptr(int64(req.Date.Day()))},
		{Time: "09:30", IsAvailable: true},
		{Time: "10:00", IsAvailable: true},
	}
	return &get_available_slots.Response{Date: req.Date, Slots: slots}, nil
}

type stubBooking struct {
	calls int
	err   error
	// gate, если задан, держит ответ до закрытия канала
	gate    chan struct{}
	started chan struct{}
}

func (s *stubBooking) Execute(_ context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	if err := req.Draft.Validate(); err != nil {
		return nil, errors.Join(create_booking.ErrIncompleteDraft, err)
	}
	s.calls++
	if s.gate != nil {
		close(s.started)
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return &create_booking.Response{Booking: domain.Booking{ID: 1001, Status: domain.StatusPending}}, nil
}

var (
	now      = time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)
	june10   = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	june11   = time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)
	shop     = &domain.Shop{ID: 7, Name: "헤어살롱"}
	service  = &domain.Service{ID: 2, Price: 30000}
	stylist3 = domain.Stylist{ID: 3, Name: "김민지"}
)

type harness struct {
	wizard   *Wizard
	stylists *stubStylists
	slots    *stubSlots
	booking  *stubBooking
}

func newHarness() *harness {
	h := &harness{
		stylists: &stubStylists{stylists: []domain.Stylist{stylist3}},
		slots:    &stubSlots{},
		booking:  &stubBooking{},
	}
	h.wizard = NewWizard(h.stylists, h.slots, h.booking, DefaultConfig(), logger.NewNop())
	h.wizard.timeProvider = fixedTime{now: now}
	return h
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StepSelectStylist, StepSelectDate))
	assert.True(t, CanTransition(StepSelectDate, StepSelectTime))
	assert.True(t, CanTransition(StepSelectTime, StepConfirm))
	assert.True(t, CanTransition(StepConfirm, StepDone))
	assert.True(t, CanTransition(StepSelectTime, StepSelectTime))

	assert.False(t, CanTransition(StepSelectStylist, StepConfirm))
	assert.False(t, CanTransition(StepSelectDate, StepDone))
	assert.False(t, CanTransition(StepDone, StepDone))
	assert.False(t, CanTransition(StepDone, StepSelectDate))
}

func TestStart_WithServiceLoadsStylists(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.wizard.Start(context.Background(), Entry{Shop: shop, Service: service}))
	assert.Equal(t, StepSelectStylist, h.wizard.Step())
	assert.Equal(t, 1, h.stylists.calls)
	assert.Len(t, h.wizard.Snapshot().Stylists, 1)
}

func TestStart_WithStylistSkipsToDate(t *testing.T) {
	h := newHarness()

	require.NoError(t, h.wizard.Start(context.Background(), Entry{Shop: shop, Stylist: &stylist3}))
	assert.Equal(t, StepSelectDate, h.wizard.Step())
	assert.Equal(t, 0, h.stylists.calls)
}

func TestStart_StylistFailureKeepsState(t *testing.T) {
	h := newHarness()
	h.stylists.err = errors.New("boom")

	err := h.wizard.Start(context.Background(), Entry{Shop: shop, Service: service})
	assert.True(t, errors.Is(err, ErrStylistsUnavailable))
	assert.Equal(t, StepSelectStylist, h.wizard.Step())
	assert.True(t, errors.Is(h.wizard.Snapshot().Err, ErrStylistsUnavailable))

	h.stylists.err = nil
	require.NoError(t, h.wizard.ReloadStylists(context.Background()))
	require.NoError(t, h.wizard.SelectStylist(3))
}

func TestStart_RequiresShop(t *testing.T) {
	h := newHarness()
	assert.True(t, errors.Is(h.wizard.Start(context.Background(), Entry{}), ErrShopRequired))
	assert.True(t, errors.Is(h.wizard.SelectStylist(3), ErrNotStarted))
}

func TestHappyPath(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service}))
	assert.True(t, errors.Is(h.wizard.SelectStylist(99), ErrUnknownStylist))
	require.NoError(t, h.wizard.SelectStylist(3))
	assert.Equal(t, StepSelectDate, h.wizard.Step())

	require.NoError(t, h.wizard.SelectDate(ctx, june10))
	assert.Equal(t, StepSelectTime, h.wizard.Step())
	assert.Len(t, h.wizard.Snapshot().Slots, 3)

	require.NoError(t, h.wizard.SelectTime("09:30"))
	assert.Equal(t, StepConfirm, h.wizard.Step())

	booking, err := h.wizard.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), booking.ID)
	assert.Equal(t, StepDone, h.wizard.Step())
	assert.Equal(t, 1, h.booking.calls)

	// после завершения мастер не принимает действий
	_, err = h.wizard.Confirm(ctx)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, 1, h.booking.calls)
}

func TestSelectDate_RejectsOutsideWindow(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))

	err := h.wizard.SelectDate(ctx, now.AddDate(0, 0, -1))
	assert.True(t, errors.Is(err, ErrDateNotSelectable))

	err = h.wizard.SelectDate(ctx, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(err, ErrDateNotSelectable))

	assert.Equal(t, StepSelectDate, h.wizard.Step())
	assert.Empty(t, h.slots.calls)

	// ровно через месяц - еще можно
	require.NoError(t, h.wizard.SelectDate(ctx, time.Date(2024, 7, 9, 0, 0, 0, 0, time.UTC)))
}

func TestSelectDate_ClearsTime(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))

	require.NoError(t, h.wizard.SelectDate(ctx, june10))
	require.NoError(t, h.wizard.SelectTime("10:00"))
	require.NoError(t, h.wizard.Back(ctx))
	assert.Equal(t, StepSelectTime, h.wizard.Step())

	require.NoError(t, h.wizard.SelectDate(ctx, june11))
	snap := h.wizard.Snapshot()
	assert.True(t, snap.Draft.Time.IsZero())
	assert.Equal(t, june11, snap.Draft.Date)
}

func TestSelectTime_UnavailableIsNoOp(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))
	require.NoError(t, h.wizard.SelectDate(ctx, june10))

	err := h.wizard.SelectTime("09:00")
	assert.True(t, errors.Is(err, ErrSlotUnavailable))

	err = h.wizard.SelectTime("23:00")
	assert.True(t, errors.Is(err, ErrSlotUnavailable))

	snap := h.wizard.Snapshot()
	assert.Equal(t, StepSelectTime, snap.Step)
	assert.True(t, snap.Draft.Time.IsZero())
}

func TestConfirm_MissingServiceStaysOnConfirm(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	// вход со специалиста: услуга не выбрана
	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Stylist: &stylist3}))
	require.NoError(t, h.wizard.SelectDate(ctx, june10))
	require.NoError(t, h.wizard.SelectTime("09:30"))

	_, err := h.wizard.Confirm(ctx)
	assert.True(t, errors.Is(err, create_booking.ErrIncompleteDraft))
	assert.Equal(t, StepConfirm, h.wizard.Step())
	assert.Equal(t, 0, h.booking.calls)
	assert.Error(t, h.wizard.Snapshot().Err)
}

func TestConfirm_ServerFailureKeepsState(t *testing.T) {
	h := newHarness()
	h.booking.err = create_booking.ErrBookingFailed
	ctx := context.Background()

	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))
	require.NoError(t, h.wizard.SelectDate(ctx, june10))
	require.NoError(t, h.wizard.SelectTime("09:30"))

	_, err := h.wizard.Confirm(ctx)
	assert.True(t, errors.Is(err, ErrSubmitFailed))

	snap := h.wizard.Snapshot()
	assert.Equal(t, StepConfirm, snap.Step)
	assert.Equal(t, types.TimeString("09:30"), snap.Draft.Time)
	assert.True(t, errors.Is(snap.Err, ErrSubmitFailed))
	assert.Equal(t, 1, h.booking.calls)
}

func TestBack_KeepsSelections(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service}))

	assert.True(t, errors.Is(h.wizard.Back(ctx), ErrInvalidTransition))

	require.NoError(t, h.wizard.SelectStylist(3))
	require.NoError(t, h.wizard.SelectDate(ctx, june10))
	require.NoError(t, h.wizard.Back(ctx))
	require.NoError(t, h.wizard.Back(ctx))

	snap := h.wizard.Snapshot()
	assert.Equal(t, StepSelectStylist, snap.Step)
	require.NotNil(t, snap.Draft.Stylist)
	assert.Equal(t, june10, snap.Draft.Date)
}

func TestBack_ToStylistStepLoadsStylists(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	// вход со специалиста: список не загружался
	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))
	assert.Equal(t, 0, h.stylists.calls)

	require.NoError(t, h.wizard.Back(ctx))
	assert.Equal(t, StepSelectStylist, h.wizard.Step())
	assert.Equal(t, 1, h.stylists.calls)

	require.NoError(t, h.wizard.SelectStylist(3))
	assert.Equal(t, StepSelectDate, h.wizard.Step())
}

func TestBack_StylistReloadFailure(t *testing.T) {
	h := newHarness()
	h.stylists.err = errors.New("boom")
	ctx := context.Background()

	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))

	err := h.wizard.Back(ctx)
	assert.True(t, errors.Is(err, ErrStylistsUnavailable))
	assert.Equal(t, StepSelectStylist, h.wizard.Step())
	assert.True(t, errors.Is(h.wizard.Snapshot().Err, ErrStylistsUnavailable))
}

func TestConfirm_StateReadableDuringSubmit(t *testing.T) {
	h := newHarness()
	h.booking.gate = make(chan struct{})
	h.booking.started = make(chan struct{})
	ctx := context.Background()

	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))
	require.NoError(t, h.wizard.SelectDate(ctx, june10))
	require.NoError(t, h.wizard.SelectTime("09:30"))

	type result struct {
		booking *domain.Booking
		err     error
	}
	done := make(chan result, 1)
	go func() {
		booking, err := h.wizard.Confirm(ctx)
		done <- result{booking, err}
	}()

	<-h.booking.started
	// запрос висит, состояние читается без ожидания
	assert.Equal(t, StepConfirm, h.wizard.Step())
	assert.Equal(t, types.TimeString("09:30"), h.wizard.Snapshot().Draft.Time)
	assert.True(t, errors.Is(h.wizard.Back(ctx), ErrSubmitInProgress))
	assert.True(t, errors.Is(h.wizard.SelectTime("10:00"), ErrSubmitInProgress))

	close(h.booking.gate)
	res := <-done
	require.NoError(t, res.err)
	assert.Equal(t, int64(1001), res.booking.ID)
	assert.Equal(t, StepDone, h.wizard.Step())
	assert.Equal(t, 1, h.booking.calls)
}

func TestSelectDate_StaleResponseDiscarded(t *testing.T) {
	h := newHarness()
	h.slots.gate = make(chan struct{})
	h.slots.started = make(chan struct{})
	h.slots.gateDate = june10
	ctx := context.Background()

	require.NoError(t, h.wizard.Start(ctx, Entry{Shop: shop, Service: service, Stylist: &stylist3}))

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- h.wizard.SelectDate(ctx, june10)
	}()

	// первая загрузка началась и висит, пользователь выбирает другую дату
	<-h.slots.started
	require.NoError(t, h.wizard.SelectDate(ctx, june11))

	close(h.slots.gate)
	assert.True(t, errors.Is(<-firstErr, ErrStaleResponse))

	snap := h.wizard.Snapshot()
	assert.Equal(t, june11, snap.Draft.Date)
	require.Len(t, snap.Slots, 3)
	assert.Equal(t, "11", snap.Slots[0].Key())
}

func TestDateOptions(t *testing.T) {
	h := newHarness()
	options := h.wizard.DateOptions()
	require.Len(t, options, 14)
	assert.True(t, options[0].IsToday)
	assert.True(t, h.wizard.IsDateSelectable(june10))
}
