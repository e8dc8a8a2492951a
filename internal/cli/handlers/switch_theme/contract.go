package switch_theme

type SessionService interface {
	DarkMode() bool
	SetDarkMode(enabled bool) error
	ToggleDarkMode() (bool, error)
}

// ThemeSwitcher применяет тему к текущему выводу
type ThemeSwitcher interface {
	SetDark(dark bool)
}

type Renderer interface {
	Success(format string, v ...interface{})
	Line(format string, v ...interface{})
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
