package bookingapi

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/pkg/types"
)

// Amount денежная сумма, сервер может прислать число или строку ("30000.0")
type Amount int64

// UnmarshalJSON реализует json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*a = 0
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", string(data), err)
	}
	*a = Amount(int64(value))
	return nil
}

// ShopFilter параметры поиска заведений
type ShopFilter struct {
	Category  domain.ShopCategory
	Search    string
	Latitude  *float64
	Longitude *float64
	Distance  int // км, используется только вместе с координатами
}

// Shop модель заведения из API
type Shop struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	ImageURLs   []string  `json:"image_urls"`
	Services    []Service `json:"services"`
}

// Service модель услуги из API
type Service struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       Amount `json:"price"`
	Duration    int    `json:"duration"` // минуты
	Description string `json:"description"`
}

// Stylist модель специалиста из API
type Stylist struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Specialty       string   `json:"specialty"`
	ExperienceYears int      `json:"experience_years"`
	Rating          *float64 `json:"rating"`
	Bio             string   `json:"bio"`
	ImageURL        string   `json:"image_url"`
}

// AvailableTime запись о доступности слота, как ее отдает сервер
type AvailableTime struct {
	StartTime   string `json:"start_time"`
	IsAvailable bool   `json:"is_available"`
	ID          *int64 `json:"id"`
}

// Booking модель бронирования из API
type Booking struct {
	ID          int64    `json:"id"`
	Shop        Shop     `json:"shop"`
	Service     Service  `json:"service"`
	Stylist     *Stylist `json:"stylist"`
	BookingDate string   `json:"booking_date"`
	BookingTime string   `json:"booking_time"`
	TotalPrice  Amount   `json:"total_price"`
	Status      string   `json:"status"`
}

// CreateBookingRequest тело запроса POST /bookings
type CreateBookingRequest struct {
	ShopID      int64  `json:"shop_id"`
	ServiceID   int64  `json:"service_id"`
	StylistID   int64  `json:"stylist_id"`
	BookingDate string `json:"booking_date"` // YYYY-MM-DD
	BookingTime string `json:"booking_time"` // HH:MM
}

// UpdateBookingRequest тело запроса PUT /bookings/:id
type UpdateBookingRequest struct {
	Status      string `json:"status,omitempty"`
	BookingDate string `json:"booking_date,omitempty"`
	BookingTime string `json:"booking_time,omitempty"`
}

// User модель пользователя из API
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// LoginRequest тело запроса POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest тело запроса POST /register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// SocialLoginRequest тело запроса POST /social_login
type SocialLoginRequest struct {
	Provider string `json:"provider"`
	UID      string `json:"uid"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// AuthResponse ответ на вход и регистрацию
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string   `json:"error"`
	Errors  []string `json:"errors"`
	Message string   `json:"message"`
}

func (r ErrorResponse) messages() []string {
	var out []string
	if r.Error != "" {
		out = append(out, r.Error)
	}
	out = append(out, r.Errors...)
	if r.Message != "" {
		out = append(out, r.Message)
	}
	return out
}

// ToDomain конвертирует модель API в доменную модель
func (s *Shop) ToDomain() domain.Shop {
	services := make([]domain.Service, 0, len(s.Services))
	for i := range s.Services {
		services = append(services, s.Services[i].ToDomain())
	}
	return domain.Shop{
		ID:          s.ID,
		Name:        s.Name,
		Category:    domain.ShopCategory(s.Category),
		Address:     s.Address,
		Phone:       s.Phone,
		Description: s.Description,
		ImageURLs:   s.ImageURLs,
		Services:    services,
	}
}

// ToDomain конвертирует модель API в доменную модель
func (s *Service) ToDomain() domain.Service {
	return domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Price:           int64(s.Price),
		DurationMinutes: s.Duration,
		Description:     s.Description,
	}
}

// ToDomain конвертирует модель API в доменную модель
func (s *Stylist) ToDomain() domain.Stylist {
	var rating float64
	if s.Rating != nil {
		rating = *s.Rating
	}
	return domain.Stylist{
		ID:              s.ID,
		Name:            s.Name,
		Specialty:       s.Specialty,
		ExperienceYears: s.ExperienceYears,
		Rating:          rating,
		Bio:             s.Bio,
		ImageURL:        s.ImageURL,
	}
}

// ToDomain конвертирует модель API в доменную модель
func (b *Booking) ToDomain() (domain.Booking, error) {
	date, err := parseBookingDate(b.BookingDate)
	if err != nil {
		return domain.Booking{}, err
	}
	bookingTime, err := parseBookingTime(b.BookingTime)
	if err != nil {
		return domain.Booking{}, err
	}

	booking := domain.Booking{
		ID:          b.ID,
		Shop:        b.Shop.ToDomain(),
		Service:     b.Service.ToDomain(),
		BookingDate: date,
		BookingTime: bookingTime,
		TotalPrice:  int64(b.TotalPrice),
		Status:      domain.BookingStatus(b.Status),
	}
	if b.Stylist != nil {
		stylist := b.Stylist.ToDomain()
		booking.Stylist = &stylist
	}
	return booking, nil
}

// ToDomain конвертирует модель API в доменную модель
func (u *User) ToDomain() domain.User {
	return domain.User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  domain.UserRole(u.Role),
	}
}

// parseBookingDate принимает как "2024-06-10", так и полную метку времени RFC 3339
func parseBookingDate(raw string) (time.Time, error) {
	if date, err := time.Parse(domain.DateFormat, raw); err == nil {
		return date, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking_date %q", raw)
	}
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}

// parseBookingTime принимает "10:00", "10:00:00" или метку времени RFC 3339
func parseBookingTime(raw string) (types.TimeString, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return types.NewTimeString(ts), nil
	}
	if len(raw) >= 5 {
		if ts, err := types.NewTimeStringFromString(raw[:5]); err == nil {
			return ts, nil
		}
	}
	return "", fmt.Errorf("invalid booking_time %q", raw)
}
