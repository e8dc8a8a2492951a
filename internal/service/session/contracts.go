package session

import (
	sessionRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/session"
)

// StateRepository интерфейс хранилища состояния клиента
type StateRepository interface {
	Load() (*sessionRepo.State, error)
	Save(state *sessionRepo.State) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
