package switch_theme

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/handlers"
)

const (
	ModeShow   = ""
	ModeOn     = "on"
	ModeOff    = "off"
	ModeToggle = "toggle"
)

const (
	msgInvalidMode  = "Неизвестный режим, используйте on, off или toggle"
	msgSaveFailed   = "Не удалось сохранить настройку темы"
	msgDarkEnabled  = "Темная тема включена"
	msgDarkDisabled = "Темная тема выключена"
)

var errInvalidMode = errors.New("invalid theme mode")

type Handler struct {
	session  SessionService
	switcher ThemeSwitcher
	out      Renderer
	logger   Logger
}

func NewHandler(session SessionService, switcher ThemeSwitcher, out Renderer, logger Logger) *Handler {
	return &Handler{
		session:  session,
		switcher: switcher,
		out:      out,
		logger:   logger,
	}
}

// Handle theme [on|off|toggle]
func (h *Handler) Handle(mode string) error {
	var (
		dark bool
		err  error
	)

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeShow:
		h.out.Line("%s", label(h.session.DarkMode()))
		return nil
	case ModeOn:
		dark, err = true, h.session.SetDarkMode(true)
	case ModeOff:
		dark, err = false, h.session.SetDarkMode(false)
	case ModeToggle:
		dark, err = h.session.ToggleDarkMode()
	default:
		return handlers.Fail(msgInvalidMode, errInvalidMode)
	}

	if err != nil {
		h.logger.Error("theme - Failed to save theme: %v", err)
		return handlers.Fail(msgSaveFailed, err)
	}

	h.switcher.SetDark(dark)
	h.out.Success("%s", label(dark))
	h.logger.Info("theme - Dark mode set to %t", dark)
	return nil
}

func label(dark bool) string {
	if dark {
		return msgDarkEnabled
	}
	return msgDarkDisabled
}
