package session

import (
	"fmt"
	"sync"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/session"
)

// Service состояние клиента: токен, текущий пользователь и тема
// Читается из хранилища один раз при создании, изменяется только через методы сервиса
type Service struct {
	repo   StateRepository
	logger Logger

	mu    sync.RWMutex
	state sessionRepo.State
}

// NewService создает сервис и загружает сохраненное состояние
func NewService(repo StateRepository, logger Logger) (*Service, error) {
	state, err := repo.Load()
	if err != nil {
		logger.Error("NewService: failed to load session state: %v", err)
		return nil, fmt.Errorf("%w: failed to load state: %v", ErrInternal, err)
	}

	return &Service{
		repo:   repo,
		logger: logger,
		state:  *state,
	}, nil
}

// IsAuthenticated возвращает true, если сохранен токен
// Срок действия токена не проверяется, сервер авторизует каждый запрос сам
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token != ""
}

// Token возвращает сохраненный токен (пустая строка, если входа не было)
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// CurrentUser возвращает сохраненного пользователя
func (s *Service) CurrentUser() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil, false
	}
	return s.state.User.ToDomain(), true
}

// RequireAuth выполняет action только для вошедшего пользователя
// Иначе action не вызывается и возвращается ErrLoginRequired
func (s *Service) RequireAuth(action func() error) error {
	if !s.IsAuthenticated() {
		s.logger.Info("RequireAuth: action requires login, redirecting")
		return ErrLoginRequired
	}
	return action()
}

// SetSession сохраняет токен и пользователя после входа
func (s *Service) SetSession(token string, user domain.User) error {
	if token == "" {
		return ErrInvalidSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Token = token
	next.User = sessionRepo.FromDomainUser(&user)

	if err := s.save(&next); err != nil {
		return err
	}
	s.logger.Info("SetSession: user id=%d logged in", user.ID)
	return nil
}

// Clear удаляет токен и пользователя (тема сохраняется)
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Token = ""
	next.User = nil

	if err := s.save(&next); err != nil {
		return err
	}
	s.logger.Info("Clear: session cleared")
	return nil
}

// DarkMode возвращает true, если включена темная тема
func (s *Service) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.IsDarkMode()
}

// SetDarkMode включает или выключает темную тему
func (s *Service) SetDarkMode(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.SetDarkMode(enabled)
	return s.save(&next)
}

// ToggleDarkMode переключает тему и возвращает новое значение
func (s *Service) ToggleDarkMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	enabled := !next.IsDarkMode()
	next.SetDarkMode(enabled)
	if err := s.save(&next); err != nil {
		return s.state.IsDarkMode(), err
	}
	return enabled, nil
}

// save записывает состояние и обновляет копию в памяти только при успехе
// Вызывается под s.mu
func (s *Service) save(next *sessionRepo.State) error {
	if err := s.repo.Save(next); err != nil {
		s.logger.Error("save: failed to persist session state: %v", err)
		return fmt.Errorf("%w: failed to save state: %v", ErrInternal, err)
	}
	s.state = *next
	return nil
}
