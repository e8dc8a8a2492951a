package render

import (
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Theme палитра вывода
type Theme struct {
	Title   *color.Color
	Accent  *color.Color
	Success *color.Color
	Warn    *color.Color
	Error   *color.Color
	Muted   *color.Color
	Text    *color.Color
}

// LightTheme палитра для светлого фона терминала
func LightTheme() Theme {
	return Theme{
		Title:   color.New(color.FgBlue, color.Bold),
		Accent:  color.New(color.FgMagenta),
		Success: color.New(color.FgGreen),
		Warn:    color.New(color.FgYellow),
		Error:   color.New(color.FgRed, color.Bold),
		Muted:   color.New(color.FgHiBlack),
		Text:    color.New(color.FgBlack),
	}
}

// DarkTheme палитра для темного фона терминала
func DarkTheme() Theme {
	return Theme{
		Title:   color.New(color.FgHiCyan, color.Bold),
		Accent:  color.New(color.FgHiMagenta),
		Success: color.New(color.FgHiGreen),
		Warn:    color.New(color.FgHiYellow),
		Error:   color.New(color.FgHiRed, color.Bold),
		Muted:   color.New(color.FgWhite),
		Text:    color.New(color.FgHiWhite),
	}
}

// Renderer построчный вывод с палитрой, зависящей от темы
type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	dark    bool
	noColor bool
	theme   Theme
}

// New создает Renderer
func New(out io.Writer, dark bool) *Renderer {
	r := &Renderer{out: out}
	r.SetDark(dark)
	return r
}

// SetDark переключает палитру
func (r *Renderer) SetDark(dark bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dark = dark
	if dark {
		r.theme = DarkTheme()
	} else {
		r.theme = LightTheme()
	}
	if r.noColor {
		r.disable()
	}
}

// IsDark returns true if the dark palette is active
func (r *Renderer) IsDark() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dark
}

// DisableColor выключает escape-последовательности (вывод не в терминал, --no-color)
func (r *Renderer) DisableColor() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noColor = true
	r.disable()
}

func (r *Renderer) disable() {
	for _, c := range []*color.Color{r.theme.Title, r.theme.Accent, r.theme.Success, r.theme.Warn, r.theme.Error, r.theme.Muted, r.theme.Text} {
		c.DisableColor()
	}
}

// Title заголовок раздела
func (r *Renderer) Title(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Title }, format, v...)
}

// Line обычная строка
func (r *Renderer) Line(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Text }, format, v...)
}

// Accent выделенная строка (цены, выбранные значения)
func (r *Renderer) Accent(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Accent }, format, v...)
}

// Success сообщение об успехе
func (r *Renderer) Success(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Success }, format, v...)
}

// Warn предупреждение
func (r *Renderer) Warn(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Warn }, format, v...)
}

// Error сообщение об ошибке
func (r *Renderer) Error(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Error }, format, v...)
}

// Muted второстепенная строка
func (r *Renderer) Muted(format string, v ...interface{}) {
	r.print(func(t Theme) *color.Color { return t.Muted }, format, v...)
}

// Blank пустая строка
func (r *Renderer) Blank() {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, "\n")
}

func (r *Renderer) print(pick func(Theme) *color.Color, format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = pick(r.theme).Fprintf(r.out, format, v...)
}
