package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/shops/models"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/wizard"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

const (
	msgEntryRequired       = "Укажите услугу (--service) или специалиста (--stylist)"
	msgShopNotFound        = "Заведение не найдено"
	msgLoadFailed          = "Не удалось загрузить информацию о заведении"
	msgServiceNotFound     = "Услуга не найдена в этом заведении"
	msgServiceRequired     = "Выберите услугу"
	msgStylistNotFound     = "Специалист не найден в этом заведении"
	msgStylistsUnavailable = "Не удалось загрузить специалистов, попробуйте позже"
	msgNoStylists          = "В заведении нет доступных специалистов"
	msgInvalidDate         = "Некорректная дата, используйте формат ГГГГ-ММ-ДД"
	msgDateNotSelectable   = "Эту дату нельзя выбрать: доступны дни с сегодняшнего и не дальше месяца вперед"
	msgSlotUnavailable     = "Это время недоступно"
	msgSlotsDegraded       = "Не удалось получить занятость, показаны все слоты рабочего дня"
	msgIncompleteDraft     = "Не все данные бронирования заполнены"
	msgSubmitFailed        = "Не удалось создать бронирование, попробуйте позже"
	msgInputAborted        = "Ввод прерван"
	msgDeclined            = "Бронирование не подтверждено"
	msgCreatedFormat       = "Бронирование #%d создано, статус: %s"

	labelService = "Услуга"
	labelStylist = "Специалист"
	labelDate    = "Дата"
	labelTime    = "Время (ЧЧ:ММ)"
	labelConfirm = "Подтвердить бронирование?"

	maxTimeAttempts = 3
)

var weekdays = [...]string{"вс", "пн", "вт", "ср", "чт", "пт", "сб"}

// Названия полей черновика для пользователя
var draftFieldLabels = map[string]string{
	domain.DraftFieldShop:    "заведение",
	domain.DraftFieldService: "услуга",
	domain.DraftFieldStylist: "специалист",
	domain.DraftFieldDate:    "дата",
	domain.DraftFieldTime:    "время",
}

// Request параметры команды book
type Request struct {
	ShopID    int64
	ServiceID int64
	StylistID int64
	Date      string // ГГГГ-ММ-ДД, пусто - выбрать из списка
	Time      string // ЧЧ:ММ, пусто - спросить
	Yes       bool   // не спрашивать подтверждение
}

type Handler struct {
	shops     ShopsService
	newWizard WizardFactory
	bookings  BookingsView
	prompter  Prompter
	out       Renderer
	logger    Logger
}

func NewHandler(
	shops ShopsService,
	newWizard WizardFactory,
	bookings BookingsView,
	prompter Prompter,
	out Renderer,
	logger Logger,
) *Handler {
	return &Handler{
		shops:     shops,
		newWizard: newWizard,
		bookings:  bookings,
		prompter:  prompter,
		out:       out,
		logger:    logger,
	}
}

// Handle book --shop <id> (--service <id> | --stylist <id>) [--date] [--time] [--yes]
func (h *Handler) Handle(ctx context.Context, req Request) error {
	if req.ServiceID <= 0 && req.StylistID <= 0 {
		return handlers.Fail(msgEntryRequired, nil)
	}

	entry, err := h.resolveEntry(ctx, req)
	if err != nil {
		return err
	}

	w := h.newWizard()
	if err := w.Start(ctx, entry); err != nil {
		h.logger.Error("book - Failed to start wizard: shop_id=%d, error=%v", req.ShopID, err)
		if errors.Is(err, wizard.ErrStylistsUnavailable) {
			return handlers.Fail(msgStylistsUnavailable, err)
		}
		return handlers.Fail(msgLoadFailed, err)
	}

	if w.Snapshot().Step == wizard.StepSelectStylist {
		if err := h.chooseStylist(w); err != nil {
			return err
		}
	}

	if err := h.chooseDate(ctx, w, req.Date); err != nil {
		return err
	}

	if err := h.chooseTime(w, req.Time); err != nil {
		return err
	}

	h.printSummary(w.Snapshot().Draft)
	if !req.Yes {
		ok, err := h.prompter.Confirm(labelConfirm)
		if err != nil {
			return handlers.Fail(msgInputAborted, err)
		}
		if !ok {
			h.out.Muted(msgDeclined)
			return nil
		}
	}

	booking, err := w.Confirm(ctx)
	if err != nil {
		if errors.Is(err, createBookingUC.ErrIncompleteDraft) {
			draft := w.Snapshot().Draft
			h.logger.Warn("book - Draft incomplete: %v", draft.MissingFields())
			return handlers.FailWithDetails(msgIncompleteDraft, fieldLabels(draft.MissingFields()), err)
		}
		h.logger.Error("book - Failed to create booking: shop_id=%d, error=%v", req.ShopID, err)
		return handlers.Fail(msgSubmitFailed, err)
	}

	h.out.Success(msgCreatedFormat, booking.ID, booking.Status.Label())
	h.logger.Info("book - Booking created: booking_id=%d, shop_id=%d", booking.ID, req.ShopID)

	// После создания мастер завершен, показываем список бронирований
	h.out.Blank()
	if err := h.bookings.Handle(ctx); err != nil {
		message, _ := handlers.MessageOf(err)
		h.logger.Warn("book - Failed to show bookings: booking_id=%d, error=%v", booking.ID, err)
		h.out.Warn("%s", message)
	}
	return nil
}

// resolveEntry находит заведение, услугу и специалиста по ID из флагов
// Без услуги в заведении с услугами пользователю предлагается выбрать ее
func (h *Handler) resolveEntry(ctx context.Context, req Request) (wizard.Entry, error) {
	detail, err := h.shops.Detail(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shops.ErrShopNotFound) || errors.Is(err, shops.ErrInvalidInput) {
			h.logger.Warn("book - Shop not found: shop_id=%d", req.ShopID)
			return wizard.Entry{}, handlers.Fail(msgShopNotFound, err)
		}
		h.logger.Error("book - Failed to load shop: shop_id=%d, error=%v", req.ShopID, err)
		return wizard.Entry{}, handlers.Fail(msgLoadFailed, err)
	}

	shop := detail.Card.Shop
	shop.Services = detail.Services
	entry := wizard.Entry{Shop: &shop}

	if req.ServiceID > 0 {
		service, ok := shop.FindService(req.ServiceID)
		if !ok {
			return wizard.Entry{}, handlers.Fail(msgServiceNotFound, fmt.Errorf("service_id=%d", req.ServiceID))
		}
		entry.Service = service
	}

	if req.StylistID > 0 {
		stylist, ok := findStylist(detail, req.StylistID)
		if !ok {
			return wizard.Entry{}, handlers.Fail(msgStylistNotFound, fmt.Errorf("stylist_id=%d", req.StylistID))
		}
		entry.Stylist = stylist

		if entry.Service == nil && len(shop.Services) > 0 {
			options := make([]string, 0, len(shop.Services))
			for _, service := range shop.Services {
				options = append(options, fmt.Sprintf("%s · %s", service.Name, domain.FormatPrice(service.Price)))
			}
			idx, err := h.prompter.Choose(labelService, options)
			if err != nil {
				return wizard.Entry{}, handlers.Fail(msgServiceRequired, err)
			}
			entry.Service = &shop.Services[idx]
		}
	}

	return entry, nil
}

func (h *Handler) chooseStylist(w Wizard) error {
	stylists := w.Snapshot().Stylists
	if len(stylists) == 0 {
		return handlers.Fail(msgNoStylists, nil)
	}

	options := make([]string, 0, len(stylists))
	for _, stylist := range stylists {
		options = append(options, fmt.Sprintf("%s · ★ %.1f", stylist.Name, stylist.DisplayRating()))
	}

	idx, err := h.prompter.Choose(labelStylist, options)
	if err != nil {
		return handlers.Fail(msgInputAborted, err)
	}
	if err := w.SelectStylist(stylists[idx].ID); err != nil {
		h.logger.Warn("book - Failed to select stylist: %v", err)
		return handlers.Fail(msgStylistNotFound, err)
	}
	return nil
}

func (h *Handler) chooseDate(ctx context.Context, w Wizard, raw string) error {
	var date time.Time
	if raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.Local)
		if err != nil {
			return handlers.Fail(msgInvalidDate, err)
		}
		date = parsed
	} else {
		dateOptions := w.DateOptions()
		options := make([]string, 0, len(dateOptions))
		for _, option := range dateOptions {
			options = append(options, dateLabel(option))
		}
		idx, err := h.prompter.Choose(labelDate, options)
		if err != nil {
			return handlers.Fail(msgInputAborted, err)
		}
		date = dateOptions[idx].Date
	}

	if err := w.SelectDate(ctx, date); err != nil {
		if errors.Is(err, wizard.ErrDateNotSelectable) {
			return handlers.Fail(msgDateNotSelectable, err)
		}
		h.logger.Error("book - Failed to select date: %v", err)
		return handlers.Fail(msgLoadFailed, err)
	}

	snap := w.Snapshot()
	if snap.SlotsDegraded {
		h.out.Warn(msgSlotsDegraded)
	}
	h.printSlots(snap.Slots)
	return nil
}

func (h *Handler) chooseTime(w Wizard, raw string) error {
	if raw != "" {
		if err := w.SelectTime(types.TimeString(raw)); err != nil {
			return handlers.Fail(msgSlotUnavailable, err)
		}
		return nil
	}

	var lastErr error
	for i := 0; i < maxTimeAttempts; i++ {
		answer, err := h.prompter.Ask(labelTime)
		if err != nil {
			return handlers.Fail(msgInputAborted, err)
		}
		lastErr = w.SelectTime(types.TimeString(answer))
		if lastErr == nil {
			return nil
		}
		h.out.Warn(msgSlotUnavailable)
	}
	return handlers.Fail(msgSlotUnavailable, lastErr)
}

func (h *Handler) printSlots(slots []domain.TimeSlot) {
	free := make([]string, 0, len(slots))
	taken := make([]string, 0)
	for _, slot := range slots {
		if slot.IsAvailable {
			free = append(free, slot.Time.String())
		} else {
			taken = append(taken, slot.Time.String())
		}
	}

	h.out.Title("Свободное время")
	for i := 0; i < len(free); i += 6 {
		end := i + 6
		if end > len(free) {
			end = len(free)
		}
		h.out.Line("  %s", strings.Join(free[i:end], "  "))
	}
	if len(taken) > 0 {
		h.out.Muted("  Занято: %s", strings.Join(taken, ", "))
	}
}

func (h *Handler) printSummary(draft domain.BookingDraft) {
	h.out.Blank()
	h.out.Title("Проверьте бронирование")
	if draft.Shop != nil {
		h.out.Line("Заведение:  %s", draft.Shop.Name)
	}
	if draft.Service != nil {
		h.out.Line("Услуга:     %s", draft.Service.Name)
	}
	if draft.Stylist != nil {
		h.out.Line("Специалист: %s", draft.Stylist.Name)
	}
	if !draft.Date.IsZero() {
		h.out.Line("Дата:       %s (%s)", draft.Date.Format(domain.DateFormat), weekdays[draft.Date.Weekday()])
	}
	h.out.Line("Время:      %s", draft.Time.String())
	h.out.Accent("Стоимость:  %s", domain.FormatPrice(draft.TotalPrice()))
}

func findStylist(detail *models.ShopDetail, stylistID int64) (*domain.Stylist, bool) {
	for i := range detail.Stylists {
		if detail.Stylists[i].ID == stylistID {
			return &detail.Stylists[i], true
		}
	}
	return nil, false
}

func dateLabel(option domain.DateOption) string {
	label := fmt.Sprintf("%s (%s)", option.Date.Format(domain.DateFormat), weekdays[option.Date.Weekday()])
	switch {
	case option.IsToday:
		label += " · сегодня"
	case option.IsTomorrow:
		label += " · завтра"
	}
	if option.IsWeekend {
		label += " · выходной"
	}
	return label
}

func fieldLabels(fields []string) []string {
	labels := make([]string, 0, len(fields))
	for _, field := range fields {
		if label, ok := draftFieldLabels[field]; ok {
			labels = append(labels, label)
			continue
		}
		labels = append(labels, field)
	}
	return labels
}
