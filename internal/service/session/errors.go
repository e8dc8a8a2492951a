package session

import "errors"

var (
	// ErrLoginRequired возвращается, когда действие требует входа в систему
	ErrLoginRequired = errors.New("login required")

	// ErrInvalidSession возвращается при попытке сохранить сессию без токена
	ErrInvalidSession = errors.New("invalid session: token is required")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("session: internal error")
)
