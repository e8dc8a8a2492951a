package handlers

import (
	"errors"
	"strconv"
	"strings"
)

const msgUnexpected = "Произошла непредвиденная ошибка, попробуйте позже"

// UserError ошибка команды с сообщением для пользователя
type UserError struct {
	Message string
	Details []string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Fail оборачивает ошибку сообщением для пользователя
func Fail(message string, err error) error {
	return &UserError{Message: message, Err: err}
}

// FailWithDetails оборачивает ошибку сообщением и списком подробностей
func FailWithDetails(message string, details []string, err error) error {
	return &UserError{Message: message, Details: details, Err: err}
}

// MessageOf возвращает сообщение для пользователя
// Для ошибок без сообщения возвращается общее сообщение
func MessageOf(err error) (string, []string) {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.Message, userErr.Details
	}
	return msgUnexpected, nil
}

// ParseID разбирает положительный идентификатор из аргумента команды
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
