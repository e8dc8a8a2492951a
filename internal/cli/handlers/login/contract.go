package login

import (
	"context"

	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.Result, error)
}

type Prompter interface {
	AskRequired(label string) (string, error)
}

type Renderer interface {
	Success(format string, v ...interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
