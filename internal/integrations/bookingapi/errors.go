package bookingapi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadRequest возвращается, когда сервер отклонил данные запроса (400, 422)
	ErrBadRequest = errors.New("bookingapi client: bad request")

	// ErrUnauthorized возвращается, когда сервер требует авторизацию или отказал в доступе (401, 403)
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")

	// ErrNotFound возвращается, когда ресурс не найден (404)
	ErrNotFound = errors.New("bookingapi client: not found")

	// ErrConflict возвращается при конфликте, например слот уже занят (409)
	ErrConflict = errors.New("bookingapi client: conflict")

	// ErrInternal возвращается при внутренних ошибках клиента и недоступности сервера
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервера
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)

// APIError ошибка, полученная от сервера в ответ на запрос
type APIError struct {
	StatusCode int
	Messages   []string // сообщения сервера из полей error / errors / message
	kind       error
}

// Error реализует error
func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%v: status %d", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", e.kind, e.StatusCode, strings.Join(e.Messages, "; "))
}

// Unwrap позволяет сравнивать ошибку с sentinel-ошибками через errors.Is
func (e *APIError) Unwrap() error {
	return e.kind
}

// ServerMessages извлекает сообщения сервера из цепочки ошибок
func ServerMessages(err error) []string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Messages
	}
	return nil
}
