package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrNoInput возвращается, когда ввод закончился до ответа
	ErrNoInput = errors.New("prompt: no input")

	// ErrInvalidChoice возвращается при выборе несуществующего пункта
	ErrInvalidChoice = errors.New("prompt: invalid choice")
)

// Prompter построчный диалог с пользователем
type Prompter struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

// New создает Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask задает вопрос и возвращает ответ без пробелов по краям
func (p *Prompter) Ask(label string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, _ = fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("prompt: read failed: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskRequired повторяет вопрос, пока ответ пустой
func (p *Prompter) AskRequired(label string) (string, error) {
	for {
		answer, err := p.Ask(label)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// Confirm задает вопрос да/нет, пустой ответ - нет
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да", "예", "네":
		return true, nil
	default:
		return false, nil
	}
}

// Choose печатает пронумерованный список и возвращает индекс выбранного пункта
func (p *Prompter) Choose(label string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrInvalidChoice
	}

	p.mu.Lock()
	for i, option := range options {
		_, _ = fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}
	p.mu.Unlock()

	answer, err := p.Ask(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, answer)
	}
	return n - 1, nil
}
