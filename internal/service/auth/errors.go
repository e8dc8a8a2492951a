package auth

import (
	"errors"
	"strings"
)

var (
	// ErrValidation возвращается, когда данные формы не прошли проверку
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials возвращается, когда сервер отклонил email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnsupportedProvider возвращается для неизвестного провайдера социального входа
	ErrUnsupportedProvider = errors.New("unsupported social login provider")

	// ErrLoginFailed возвращается при любой другой ошибке входа
	ErrLoginFailed = errors.New("login failed")

	// ErrRegistrationFailed возвращается при ошибке регистрации на сервере
	ErrRegistrationFailed = errors.New("registration failed")

	// ErrInternal возвращается при ошибках сохранения сессии
	ErrInternal = errors.New("auth: internal error")
)

// ValidationError содержит все найденные ошибки формы сразу
type ValidationError struct {
	Messages []string
}

// Error реализует error
func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + strings.Join(e.Messages, "; ")
}

// Unwrap позволяет сравнивать ошибку с ErrValidation через errors.Is
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
