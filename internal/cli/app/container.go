package app

import (
	"fmt"
	"io"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	cancelBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/create_booking"
	getProfileHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/get_profile"
	getShopHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/get_shop"
	getUserBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/get_user_bookings"
	listShopsHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/list_shops"
	loginHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/login"
	logoutHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/logout"
	registerHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/register"
	socialLoginHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/social_login"
	switchThemeHandler "github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers/switch_theme"
	"github.com/m04kA/SMC-BeautyBooking/internal/cli/prompt"
	"github.com/m04kA/SMC-BeautyBooking/internal/cli/render"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	sessionRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
	authService "github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	sessionService "github.com/m04kA/SMC-BeautyBooking/internal/service/session"
	shopsService "github.com/m04kA/SMC-BeautyBooking/internal/service/shops"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/wizard"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// App собранное приложение: сессия, вывод и обработчики команд
type App struct {
	Session  *sessionService.Service
	Renderer *render.Renderer
	Handlers Handlers
	stdout   io.Writer
	logger   Logger
}

// Handlers обработчики команд
type Handlers struct {
	ListShops   *listShopsHandler.Handler
	GetShop     *getShopHandler.Handler
	Book        *createBookingHandler.Handler
	Bookings    *getUserBookingsHandler.Handler
	Cancel      *cancelBookingHandler.Handler
	Login       *loginHandler.Handler
	SocialLogin *socialLoginHandler.Handler
	Register    *registerHandler.Handler
	Logout      *logoutHandler.Handler
	Profile     *getProfileHandler.Handler
	Theme       *switchThemeHandler.Handler
}

// Build собирает зависимости приложения
// m может быть nil, тогда метрики не собираются
func Build(cfg *config.Config, stdin io.Reader, stdout io.Writer, log Logger, m *metrics.Metrics) (*App, error) {
	// Сессия и тема
	sessionSvc, err := sessionService.NewService(sessionRepo.NewRepository(cfg.Session.File), log)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	log.Info("Session loaded from %s (authenticated=%t)", cfg.Session.File, sessionSvc.IsAuthenticated())

	out := render.New(stdout, sessionSvc.DarkMode())
	prompter := prompt.New(stdin, stdout)

	// Транспорт: X-Request-ID, токен сессии, метрики
	var (
		fallbackRecorder  getAvailableSlotsUC.FallbackRecorder
		createdRecorder   createBookingUC.CreatedRecorder
		cancelledRecorder bookingsService.CancelledRecorder
	)
	middlewares := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Auth(sessionSvc),
	}
	if m != nil {
		middlewares = append(middlewares, middleware.Metrics(m))
		fallbackRecorder, createdRecorder, cancelledRecorder = m, m, m
	}

	client := bookingapi.NewClient(
		cfg.API.BaseURL,
		time.Duration(cfg.API.Timeout)*time.Second,
		middleware.Chain(nil, middlewares...),
		log,
	)
	log.Info("Booking API client initialized (url=%s, timeout=%ds)", cfg.API.BaseURL, cfg.API.Timeout)

	// Сервисы и use cases
	authSvc := authService.NewService(client, sessionSvc, log)
	shopsSvc := shopsService.NewService(client, log)
	bookingsSvc := bookingsService.NewService(client, cancelledRecorder, log)

	grid := getAvailableSlotsUC.Grid{
		StartHour:           cfg.Booking.BusinessStartHour,
		EndHour:             cfg.Booking.BusinessEndHour,
		SlotDurationMinutes: cfg.Booking.SlotDurationMinutes,
	}
	slotsUseCase := getAvailableSlotsUC.NewUseCase(client, grid, fallbackRecorder, log)
	createBookingUseCase := createBookingUC.NewUseCase(client, createdRecorder, log)

	wizardCfg := wizard.Config{
		WindowMonths: cfg.Booking.WindowMonths,
		DateListDays: cfg.Booking.DateListDays,
	}
	newWizard := func() createBookingHandler.Wizard {
		return wizard.NewWizard(client, slotsUseCase, createBookingUseCase, wizardCfg, log)
	}

	// Обработчики команд
	bookingsView := getUserBookingsHandler.NewHandler(bookingsSvc, out, log)
	h := Handlers{
		ListShops:   listShopsHandler.NewHandler(shopsSvc, out, log),
		GetShop:     getShopHandler.NewHandler(shopsSvc, out, log),
		Book:        createBookingHandler.NewHandler(shopsSvc, newWizard, bookingsView, prompter, out, log),
		Bookings:    bookingsView,
		Cancel:      cancelBookingHandler.NewHandler(bookingsSvc, prompter, out, log),
		Login:       loginHandler.NewHandler(authSvc, prompter, out, log),
		SocialLogin: socialLoginHandler.NewHandler(authSvc, out, log),
		Register:    registerHandler.NewHandler(authSvc, prompter, out, log),
		Logout:      logoutHandler.NewHandler(authSvc, out, log),
		Profile:     getProfileHandler.NewHandler(sessionSvc, out),
		Theme:       switchThemeHandler.NewHandler(sessionSvc, out, out, log),
	}

	return &App{
		Session:  sessionSvc,
		Renderer: out,
		Handlers: h,
		stdout:   stdout,
		logger:   log,
	}, nil
}
