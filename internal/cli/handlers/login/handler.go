package login

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
)

const (
	msgInvalidCredentials = "Неверный email или пароль"
	msgLoginFailed        = "Не удалось войти, попробуйте позже"
	msgInputAborted       = "Ввод прерван"
	msgWelcomeFormat      = "Добро пожаловать, %s!"
)

// Request параметры команды login, пустые поля запрашиваются интерактивно
type Request struct {
	Email    string
	Password string
}

type Handler struct {
	service  AuthService
	prompter Prompter
	out      Renderer
	logger   Logger
}

func NewHandler(service AuthService, prompter Prompter, out Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		prompter: prompter,
		out:      out,
		logger:   logger,
	}
}

// Handle login [--email] [--password]
func (h *Handler) Handle(ctx context.Context, req Request) error {
	var err error
	if req.Email == "" {
		if req.Email, err = h.prompter.AskRequired("Email"); err != nil {
			return handlers.Fail(msgInputAborted, err)
		}
	}
	if req.Password == "" {
		if req.Password, err = h.prompter.AskRequired("Пароль"); err != nil {
			return handlers.Fail(msgInputAborted, err)
		}
	}

	result, err := h.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("login - Invalid credentials: email=%s", req.Email)
			return handlers.Fail(msgInvalidCredentials, err)
		}
		h.logger.Error("login - Failed to log in: email=%s, error=%v", req.Email, err)
		return handlers.Fail(msgLoginFailed, err)
	}

	h.out.Success(msgWelcomeFormat, result.User.Name)
	h.logger.Info("login - Logged in: user_id=%d", result.User.ID)
	return nil
}
