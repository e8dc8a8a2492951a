package register

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
)

const (
	msgValidation         = "Проверьте данные регистрации"
	msgRegistrationFailed = "Не удалось зарегистрироваться, попробуйте позже"
	msgInputAborted       = "Ввод прерван"
	msgWelcomeFormat      = "Регистрация завершена, добро пожаловать, %s!"
)

// Request параметры команды register, пустые поля запрашиваются интерактивно
type Request struct {
	Email           string
	Password        string
	PasswordConfirm string
	Name            string
	Phone           string
	Role            string
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

// Handle register [--email] [--password] [--password-confirm] [--name] [--phone] [--role]
func (h *Handler) Handle(ctx context.Context, req Request) error {
	if err := h.fill(&req); err != nil {
		return handlers.Fail(msgInputAborted, err)
	}

	result, err := h.service.Register(ctx, auth.RegisterForm{
		Email:           req.Email,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
		Name:            req.Name,
		Phone:           req.Phone,
		Role:            domain.UserRole(req.Role),
	})
	if err != nil {
		var validationErr *auth.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("register - Validation failed: %v", validationErr.Messages)
			return handlers.FailWithDetails(msgValidation, validationErr.Messages, err)
		}
		h.logger.Error("register - Failed to register: email=%s, error=%v", req.Email, err)
		return handlers.Fail(msgRegistrationFailed, err)
	}

	h.out.Success(msgWelcomeFormat, result.User.Name)
	h.logger.Info("register - Registered: user_id=%d", result.User.ID)
	return nil
}

// fill запрашивает незаполненные поля
// Телефон и имя необязательны для ввода, проверку формата выполняет сервис
func (h *Handler) fill(req *Request) error {
	var err error
	if req.Email == "" {
		if req.Email, err = h.prompter.AskRequired("Email"); err != nil {
			return err
		}
	}
	if req.Password == "" {
		if req.Password, err = h.prompter.AskRequired("Пароль"); err != nil {
			return err
		}
	}
	if req.PasswordConfirm == "" {
		if req.PasswordConfirm, err = h.prompter.AskRequired("Повторите пароль"); err != nil {
			return err
		}
	}
	if req.Name == "" {
		if req.Name, err = h.prompter.Ask("Имя"); err != nil {
			return err
		}
	}
	if req.Phone == "" {
		if req.Phone, err = h.prompter.Ask("Телефон (010-1234-5678)"); err != nil {
			return err
		}
	}
	return nil
}
