package social_login

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/auth"
)

const (
	msgUnsupportedProvider = "Поддерживаются только google и kakao"
	msgLoginFailedFormat   = "Не удалось войти через %s, попробуйте позже"
	msgWelcomeFormat       = "Добро пожаловать, %s!"
)

// Request параметры команды social-login
type Request struct {
	Provider string
	Email    string
	Name     string
	Phone    string
}

type Handler struct {
	service AuthService
	out     Renderer
	logger  Logger
}

func NewHandler(service AuthService, out Renderer, logger Logger) *Handler {
	return &Handler{
		service: service,
		out:     out,
		logger:  logger,
	}
}

// Handle social-login <provider> [--email] [--name] [--phone]
func (h *Handler) Handle(ctx context.Context, req Request) error {
	provider := auth.Provider(strings.ToLower(strings.TrimSpace(req.Provider)))

	result, err := h.service.SocialLogin(ctx, provider, auth.SocialProfile{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUnsupportedProvider) {
			h.logger.Warn("social-login - Unsupported provider: %s", req.Provider)
			return handlers.Fail(msgUnsupportedProvider, err)
		}
		h.logger.Error("social-login - Failed to log in: provider=%s, error=%v", provider, err)
		return handlers.Fail(fmt.Sprintf(msgLoginFailedFormat, provider), err)
	}

	h.out.Success(msgWelcomeFormat, result.User.Name)
	h.logger.Info("social-login - Logged in: provider=%s, user_id=%d", provider, result.User.ID)
	return nil
}
