package social_login

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
)

type AuthService interface {
	SocialLogin(ctx context.Context, provider auth.Provider, profile auth.SocialProfile) (*auth.Result, error)
}

type Renderer interface {
	Success(format string, v ...interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
