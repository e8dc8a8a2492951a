package get_profile

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
)

const (
	msgTitle        = "Профиль"
	msgNoProfile    = "Данные профиля недоступны, войдите заново"
	msgNotSpecified = "не указан"
)

type Handler struct {
	session SessionService
	out     Renderer
}

func NewHandler(session SessionService, out Renderer) *Handler {
	return &Handler{
		session: session,
		out:     out,
	}
}

// Handle profile
func (h *Handler) Handle() error {
	user, ok := h.session.CurrentUser()
	if !ok {
		return handlers.Fail(msgNoProfile, nil)
	}

	phone := user.Phone
	if phone == "" {
		phone = msgNotSpecified
	}

	h.out.Title(msgTitle)
	h.out.Line("Имя:     %s", user.Name)
	h.out.Line("Email:   %s", user.Email)
	h.out.Line("Телефон: %s", phone)
	h.out.Line("Роль:    %s", user.Role.Label())
	h.out.Muted("ID: %d", user.ID)
	return nil
}
