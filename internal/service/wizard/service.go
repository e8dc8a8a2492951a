package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Wizard конечный автомат мастера бронирования
// Один экземпляр соответствует одному черновику бронирования
type Wizard struct {
	stylistsClient StylistsClient
	slotsUseCase   SlotsUseCase
	bookingUseCase BookingUseCase
	timeProvider   TimeProvider
	cfg            Config
	logger         Logger

	mu       sync.Mutex
	started  bool
	step     Step
	draft    domain.BookingDraft
	stylists []domain.Stylist
	slots    []domain.TimeSlot
	degraded bool
	lastErr  error
	booking  *domain.Booking
	// submitting выставлен на время отправки бронирования, мастер в это время не меняется
	submitting bool
	// generation увеличивается при каждом выборе даты, ответы для старых поколений отбрасываются
	generation uint64
}

// NewWizard создает новый экземпляр мастера
func NewWizard(
	stylistsClient StylistsClient,
	slotsUseCase SlotsUseCase,
	bookingUseCase BookingUseCase,
	cfg Config,
	logger Logger,
) *Wizard {
	return &Wizard{
		stylistsClient: stylistsClient,
		slotsUseCase:   slotsUseCase,
		bookingUseCase: bookingUseCase,
		timeProvider:   &RealTimeProvider{},
		cfg:            cfg,
		logger:         logger,
	}
}

// SetTimeProvider заменяет источник текущего времени
func (w *Wizard) SetTimeProvider(tp TimeProvider) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeProvider = tp
}

// Start запускает мастер с точки входа
// Без специалиста мастер начинает с шага выбора специалиста и сразу загружает список
// При ошибке загрузки мастер остается на этом шаге, список можно загрузить повторно через ReloadStylists
func (w *Wizard) Start(ctx context.Context, entry Entry) error {
	if entry.Shop == nil {
		return ErrShopRequired
	}

	w.mu.Lock()
	w.started = true
	w.draft = domain.BookingDraft{
		Shop:    entry.Shop,
		Service: entry.Service,
		Stylist: entry.Stylist,
	}
	w.stylists = nil
	w.slots = nil
	w.degraded = false
	w.lastErr = nil
	w.booking = nil
	w.generation++

	if entry.Stylist != nil {
		w.step = StepSelectDate
		w.mu.Unlock()
		w.logger.Info("Wizard.Start: shop=%d, entering with stylist=%d", entry.Shop.ID, entry.Stylist.ID)
		return nil
	}

	w.step = StepSelectStylist
	w.mu.Unlock()

	w.logger.Info("Wizard.Start: shop=%d, entering with service, loading stylists", entry.Shop.ID)
	return w.ReloadStylists(ctx)
}

// ReloadStylists загружает список специалистов заведения
func (w *Wizard) ReloadStylists(ctx context.Context) error {
	w.mu.Lock()
	if !w.started {
		w.mu.Unlock()
		return ErrNotStarted
	}
	shopID := w.draft.Shop.ID
	w.mu.Unlock()

	stylists, err := w.stylistsClient.GetStylists(ctx, shopID)

	w.mu.Lock()
	defer w.mu.Unlock()

	if err != nil {
		w.logger.Error("Wizard.ReloadStylists: failed to load stylists for shop=%d: %v", shopID, err)
		w.lastErr = fmt.Errorf("%w: %v", ErrStylistsUnavailable, err)
		return w.lastErr
	}

	w.stylists = stylists
	w.lastErr = nil
	w.logger.Info("Wizard.ReloadStylists: loaded %d stylists for shop=%d", len(stylists), shopID)
	return nil
}

// SelectStylist выбирает специалиста из загруженного списка (шаг 0 -> 1)
func (w *Wizard) SelectStylist(stylistID int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkTransition(StepSelectDate); err != nil {
		return err
	}

	for i := range w.stylists {
		if w.stylists[i].ID == stylistID {
			stylist := w.stylists[i]
			w.draft.Stylist = &stylist
			w.step = StepSelectDate
			w.lastErr = nil
			w.logger.Info("Wizard.SelectStylist: stylist=%d selected", stylistID)
			return nil
		}
	}

	w.logger.Warn("Wizard.SelectStylist: stylist=%d not in shop list", stylistID)
	return fmt.Errorf("%w: id=%d", ErrUnknownStylist, stylistID)
}

// SelectDate выбирает дату (шаг 1 -> 2), сбрасывает время и загружает сетку слотов
// Если пока шла загрузка была выбрана другая дата, ответ отбрасывается и возвращается ErrStaleResponse
func (w *Wizard) SelectDate(ctx context.Context, date time.Time) error {
	w.mu.Lock()

	if err := w.checkTransition(StepSelectTime); err != nil {
		w.mu.Unlock()
		return err
	}
	if w.draft.Stylist == nil {
		w.mu.Unlock()
		return ErrStylistRequired
	}
	if !domain.IsDateSelectable(date, w.timeProvider.Now(), w.cfg.WindowMonths) {
		w.mu.Unlock()
		w.logger.Warn("Wizard.SelectDate: date=%s is not selectable", date.Format(domain.DateFormat))
		return fmt.Errorf("%w: %s", ErrDateNotSelectable, date.Format(domain.DateFormat))
	}

	day := domain.TruncateToDay(date)
	w.draft.Date = day
	w.draft.Time = ""
	w.step = StepSelectTime
	w.slots = nil
	w.degraded = false
	w.lastErr = nil
	w.generation++
	generation := w.generation
	req := &get_available_slots.Request{
		ShopID:    w.draft.Shop.ID,
		StylistID: w.draft.Stylist.ID,
		Date:      day,
	}
	w.mu.Unlock()

	resp, err := w.slotsUseCase.Execute(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if generation != w.generation {
		w.logger.Info("Wizard.SelectDate: discarding stale availability for date=%s", day.Format(domain.DateFormat))
		return ErrStaleResponse
	}
	if err != nil {
		w.logger.Error("Wizard.SelectDate: failed to build slots for date=%s: %v", day.Format(domain.DateFormat), err)
		w.lastErr = err
		return err
	}

	w.slots = resp.Slots
	w.degraded = resp.Degraded
	w.logger.Info("Wizard.SelectDate: date=%s, %d slots, degraded=%t", day.Format(domain.DateFormat), len(resp.Slots), resp.Degraded)
	return nil
}

// SelectTime выбирает время (шаг 2 -> 3)
// Занятый или отсутствующий в сетке слот не меняет ни шаг, ни выбранное время
func (w *Wizard) SelectTime(t types.TimeString) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.checkTransition(StepConfirm); err != nil {
		return err
	}

	slot, ok := domain.FindSlot(w.slots, t)
	if !ok || !slot.IsAvailable {
		w.logger.Info("Wizard.SelectTime: slot %s is not available, ignoring", t)
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, t)
	}

	w.draft.Time = t
	w.step = StepConfirm
	w.lastErr = nil
	w.logger.Info("Wizard.SelectTime: time=%s selected", t)
	return nil
}

// Confirm отправляет бронирование (шаг 3 -> завершение)
// При ошибке мастер остается на шаге подтверждения, ошибка сохраняется для показа; повторной отправки нет
// На время запроса блокировка снимается, остальные действия возвращают ErrSubmitInProgress
func (w *Wizard) Confirm(ctx context.Context) (*domain.Booking, error) {
	w.mu.Lock()
	if err := w.checkTransition(StepDone); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.submitting = true
	draft := w.draft
	w.mu.Unlock()

	resp, err := w.bookingUseCase.Execute(ctx, &create_booking.Request{Draft: draft})

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false

	if err != nil {
		if errors.Is(err, create_booking.ErrIncompleteDraft) {
			w.logger.Warn("Wizard.Confirm: draft incomplete, missing %v", draft.MissingFields())
			w.lastErr = err
			return nil, err
		}
		w.logger.Error("Wizard.Confirm: submit failed: %v", err)
		w.lastErr = fmt.Errorf("%w: %v", ErrSubmitFailed, err)
		return nil, w.lastErr
	}

	booking := resp.Booking
	w.booking = &booking
	w.step = StepDone
	w.lastErr = nil
	w.logger.Info("Wizard.Confirm: booking id=%d created", booking.ID)
	return &booking, nil
}

// Back возвращает мастер на предыдущий шаг, выбранные значения сохраняются
// При возврате к выбору специалиста пустой список загружается заново
func (w *Wizard) Back(ctx context.Context) error {
	w.mu.Lock()

	if !w.started {
		w.mu.Unlock()
		return ErrNotStarted
	}
	if w.submitting {
		w.mu.Unlock()
		return ErrSubmitInProgress
	}
	if !CanGoBack(w.step) {
		step := w.step
		w.mu.Unlock()
		return fmt.Errorf("%w: cannot go back from %s", ErrInvalidTransition, step)
	}

	w.step--
	w.lastErr = nil
	needStylists := w.step == StepSelectStylist && len(w.stylists) == 0
	w.mu.Unlock()

	if needStylists {
		return w.ReloadStylists(ctx)
	}
	return nil
}

// Step возвращает текущий шаг
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Snapshot возвращает копию состояния мастера
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Snapshot{
		Step:          w.step,
		Draft:         w.draft,
		Stylists:      append([]domain.Stylist(nil), w.stylists...),
		Slots:         append([]domain.TimeSlot(nil), w.slots...),
		SlotsDegraded: w.degraded,
		Err:           w.lastErr,
		Booking:       w.booking,
	}
}

// DateOptions список быстрого выбора дат начиная с сегодняшнего дня
func (w *Wizard) DateOptions() []domain.DateOption {
	return domain.DateOptions(w.now(), w.cfg.DateListDays)
}

// IsDateSelectable проверяет, можно ли выбрать дату
func (w *Wizard) IsDateSelectable(date time.Time) bool {
	return domain.IsDateSelectable(date, w.now(), w.cfg.WindowMonths)
}

func (w *Wizard) now() time.Time {
	w.mu.Lock()
	tp := w.timeProvider
	w.mu.Unlock()
	return tp.Now()
}

// checkTransition проверяет переход из текущего шага, вызывается под w.mu
func (w *Wizard) checkTransition(to Step) error {
	if !w.started {
		return ErrNotStarted
	}
	if w.submitting {
		return ErrSubmitInProgress
	}
	if !CanTransition(w.step, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.step, to)
	}
	return nil
}
