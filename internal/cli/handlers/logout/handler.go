package logout

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
)

const (
	msgLogoutFailed = "Не удалось выйти из аккаунта"
	msgLoggedOut    = "Вы вышли из аккаунта"
)

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

// Handle logout
func (h *Handler) Handle() error {
	if err := h.service.Logout(); err != nil {
		h.logger.Error("logout - Failed to clear session: %v", err)
		return handlers.Fail(msgLogoutFailed, err)
	}

	h.out.Success(msgLoggedOut)
	h.logger.Info("logout - Session cleared")
	return nil
}
