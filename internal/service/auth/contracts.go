package auth

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// APIClient интерфейс клиента API для входа и регистрации
type APIClient interface {
	Login(ctx context.Context, req bookingapi.LoginRequest) (*bookingapi.AuthResponse, error)
	Register(ctx context.Context, req bookingapi.RegisterRequest) (*bookingapi.AuthResponse, error)
	SocialLogin(ctx context.Context, req bookingapi.SocialLoginRequest) (*bookingapi.AuthResponse, error)
}

// SessionStore интерфейс хранилища сессии
type SessionStore interface {
	SetSession(token string, user domain.User) error
	Clear() error
	CurrentUser() (*domain.User, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
