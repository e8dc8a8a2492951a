package app_test

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/app"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi/fakeapi"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
	"github.com/m04kA/SMC-BeautyBooking/pkg/ptr"
)

type cli struct {
	t       *testing.T
	srv     *fakeapi.Server
	cfg     *config.Config
	metrics *metrics.Metrics
}

func newCLI(t *testing.T) *cli {
	t.Helper()

	srv := fakeapi.New()
	t.Cleanup(srv.Close)

	srv.AddShop(bookingapi.Shop{
		ID:       7,
		Name:     "헤어살롱 강남",
		Category: "hair_salon",
		Address:  "서울특별시 강남구 테헤란로 123",
		Services: []bookingapi.Service{{ID: 2, Name: "커트", Price: 30000, Duration: 60}},
	})
	srv.AddShop(bookingapi.Shop{
		ID:       8,
		Name:     "필라테스 마포",
		Category: "pilates",
		Address:  "서울특별시 마포구 월드컵로 1",
	})
	srv.AddStylist(7, bookingapi.Stylist{ID: 3, Name: "김민지", Rating: ptr.Ptr(4.8)})
	srv.AddUser(bookingapi.User{ID: 1, Email: "a@b.c", Name: "홍길동", Role: "customer"}, "secret1")

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL()
	cfg.Session.File = filepath.Join(t.TempDir(), "session.toml")

	return &cli{t: t, srv: srv, cfg: cfg, metrics: metrics.New("test")}
}

// run выполняет одну команду как отдельный запуск процесса
func (c *cli) run(stdin string, args ...string) (int, string) {
	c.t.Helper()

	var out bytes.Buffer
	a, err := app.Build(c.cfg, strings.NewReader(stdin), &out, logger.NewNop(), c.metrics)
	require.NoError(c.t, err)
	a.Renderer.DisableColor()

	code := a.Execute(context.Background(), args)
	return code, out.String()
}

func (c *cli) login() {
	c.t.Helper()
	code, out := c.run("", "login", "--email", "a@b.c", "--password", "secret1")
	require.Equal(c.t, 0, code, out)
}

func TestCLI_AuthRequiredCommandsStopWithoutSession(t *testing.T) {
	c := newCLI(t)

	for _, args := range [][]string{
		{"bookings"},
		{"cancel", "1"},
		{"profile"},
		{"book", "--shop", "7", "--service", "2"},
	} {
		code, out := c.run("", args...)
		assert.Equal(t, 1, code, args)
		assert.Contains(t, out, "Войдите в аккаунт", args)
	}
	assert.Equal(t, 0, c.srv.TotalCalls())
}

func TestCLI_LoginPersistsSession(t *testing.T) {
	c := newCLI(t)

	code, out := c.run("a@b.c\nwrong\n", "login")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Неверный email или пароль")

	code, out = c.run("a@b.c\nsecret1\n", "login")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Добро пожаловать, 홍길동!")

	code, out = c.run("", "profile")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Email:   a@b.c")
	assert.Contains(t, out, "Роль:    Клиент")

	code, out = c.run("", "logout")
	require.Equal(t, 0, code, out)

	code, _ = c.run("", "profile")
	assert.Equal(t, 1, code)
}

func TestCLI_Shops(t *testing.T) {
	c := newCLI(t)

	code, out := c.run("", "shops", "--district", "강남구")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Все заведения")
	assert.Contains(t, out, "[7] 헤어살롱 강남 · Парикмахерская")
	assert.NotContains(t, out, "필라테스 마포")
	assert.Contains(t, out, "Показано 1 из 2")

	code, out = c.run("", "shops", "--lat", "37.5")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Некорректные параметры поиска")

	code, out = c.run("", "shop", "7")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "[2] 커트")
	assert.Contains(t, out, "30,000원 · 60 мин")
	assert.Contains(t, out, "[3] 김민지 · ★ 4.8")

	code, out = c.run("", "shop", "99")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Заведение не найдено")
}

func TestCLI_BookAndCancel(t *testing.T) {
	c := newCLI(t)
	c.login()

	date := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	c.srv.SetAvailableTimes(3, date, []bookingapi.AvailableTime{
		{StartTime: "09:00", IsAvailable: false, ID: ptr.Ptr(int64(101))},
	})

	// занятое время не отправляется на сервер
	code, out := c.run("1\n", "book", "--shop", "7", "--service", "2", "--date", date, "--time", "09:00", "--yes")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Это время недоступно")
	assert.Empty(t, c.srv.Created())

	// специалист выбирается из списка
	code, out = c.run("1\n", "book", "--shop", "7", "--service", "2", "--date", date, "--time", "09:30", "--yes")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Занято: 09:00")
	assert.Contains(t, out, "Стоимость:  30,000원")
	assert.Contains(t, out, "Бронирование #1001 создано")
	// после создания показывается список бронирований
	assert.Contains(t, out, "Мои бронирования")
	assert.Contains(t, out, "#1001 헤어살롱 강남 · 커트 [Ожидает подтверждения]")
	assert.Equal(t, 1, c.srv.Calls(fakeapi.RouteListBookings))

	created := c.srv.Created()
	require.Len(t, created, 1)
	assert.Equal(t, bookingapi.CreateBookingRequest{
		ShopID:      7,
		ServiceID:   2,
		StylistID:   3,
		BookingDate: date,
		BookingTime: "09:30",
	}, created[0])
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.BookingsCreated))

	code, out = c.run("", "bookings")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "#1001 헤어살롱 강남 · 커트 [Ожидает подтверждения]")
	assert.Contains(t, out, "Отменить: cancel 1001")

	// без подтверждения запрос на отмену не отправляется
	code, out = c.run("n\n", "cancel", "1001")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Отмена не подтверждена")
	_, updated := c.srv.Update(1001)
	assert.False(t, updated)

	code, out = c.run("y\n", "cancel", "1001")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Бронирование #1001 отменено")
	assert.Contains(t, out, "Активных бронирований: 0")
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.BookingsCancelled))

	code, out = c.run("", "cancel", "1001", "--yes")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Это бронирование нельзя отменить")
}

func TestCLI_BookWithStylistAsksForService(t *testing.T) {
	c := newCLI(t)
	c.login()

	date := time.Now().AddDate(0, 0, 2).Format(domain.DateFormat)
	code, out := c.run("1\n", "book", "--shop", "7", "--stylist", "3", "--date", date, "--time", "10:00", "--yes")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "1) 커트 · 30,000원")

	created := c.srv.Created()
	require.Len(t, created, 1)
	assert.Equal(t, int64(2), created[0].ServiceID)
}

func TestCLI_BookSucceedsWhenBookingsListFails(t *testing.T) {
	c := newCLI(t)
	c.login()
	c.srv.FailRoute(fakeapi.RouteListBookings, http.StatusInternalServerError)

	date := time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
	code, out := c.run("1\n", "book", "--shop", "7", "--service", "2", "--date", date, "--time", "10:00", "--yes")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Бронирование #1001 создано")
	assert.Contains(t, out, "Не удалось загрузить список бронирований")
	assert.Len(t, c.srv.Created(), 1)
	assert.Equal(t, 1, c.srv.Calls(fakeapi.RouteListBookings))
}

func TestCLI_BookRejectsDateOutsideWindow(t *testing.T) {
	c := newCLI(t)
	c.login()

	date := time.Now().AddDate(0, 3, 0).Format(domain.DateFormat)
	code, out := c.run("", "book", "--shop", "7", "--service", "2", "--stylist", "3", "--date", date, "--time", "10:00", "--yes")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Эту дату нельзя выбрать")
	assert.Equal(t, 0, c.srv.Calls(fakeapi.RouteAvailableTimes))
}

func TestCLI_RegisterShowsAllValidationErrors(t *testing.T) {
	c := newCLI(t)

	code, out := c.run("", "register",
		"--email", "new@user.kr",
		"--password", "abc",
		"--password-confirm", "abd",
		"--name", "김철수",
		"--phone", "01012345678",
	)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Проверьте данные регистрации")
	assert.Contains(t, out, "  - Пароли не совпадают")
	assert.Contains(t, out, "  - Неверный формат телефона (пример: 010-1234-5678)")
	assert.Equal(t, 0, c.srv.TotalCalls())

	code, out = c.run("", "register",
		"--email", "new@user.kr",
		"--password", "secret1",
		"--password-confirm", "secret1",
		"--name", "김철수",
		"--phone", "010-1234-5678",
	)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "добро пожаловать, 김철수!")
}

func TestCLI_SocialLogin(t *testing.T) {
	c := newCLI(t)

	code, out := c.run("", "social-login", "naver")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Поддерживаются только google и kakao")

	code, out = c.run("", "social-login", "Google", "--name", "이영희")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Добро пожаловать, 이영희!")
}

func TestCLI_Theme(t *testing.T) {
	c := newCLI(t)

	code, out := c.run("", "theme")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Темная тема выключена")

	code, out = c.run("", "theme", "toggle")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Темная тема включена")

	var buf bytes.Buffer
	a, err := app.Build(c.cfg, strings.NewReader(""), &buf, logger.NewNop(), nil)
	require.NoError(t, err)
	assert.True(t, a.Session.DarkMode())
	assert.True(t, a.Renderer.IsDark())

	code, out = c.run("", "theme", "sideways")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Неизвестный режим")
}

func TestCLI_UnknownCommand(t *testing.T) {
	c := newCLI(t)

	code, out := c.run("", "fly")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown command")
}
