package session

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Значения флага темной темы в файле (строковые, как в исходном хранилище)
const (
	darkModeOn  = "true"
	darkModeOff = "false"
)

// State содержимое файла сессии
type State struct {
	Token    string      `toml:"token"`
	User     *UserRecord `toml:"user,omitempty"`
	DarkMode string      `toml:"dark_mode"`
}

// UserRecord сохраненный профиль пользователя
type UserRecord struct {
	ID    int64  `toml:"id"`
	Email string `toml:"email"`
	Name  string `toml:"name"`
	Phone string `toml:"phone"`
	Role  string `toml:"role"`
}

// IsDarkMode возвращает true, если в файле сохранена темная тема
func (s *State) IsDarkMode() bool {
	return s.DarkMode == darkModeOn
}

// SetDarkMode сохраняет флаг темной темы в строковом виде
func (s *State) SetDarkMode(enabled bool) {
	if enabled {
		s.DarkMode = darkModeOn
		return
	}
	s.DarkMode = darkModeOff
}

// FromDomainUser конвертирует пользователя в запись файла
func FromDomainUser(u *domain.User) *UserRecord {
	if u == nil {
		return nil
	}
	return &UserRecord{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Phone: u.Phone,
		Role:  string(u.Role),
	}
}

// ToDomain конвертирует запись файла в доменную модель
func (r *UserRecord) ToDomain() *domain.User {
	if r == nil {
		return nil
	}
	return &domain.User{
		ID:    r.ID,
		Email: r.Email,
		Name:  r.Name,
		Phone: r.Phone,
		Role:  domain.UserRole(r.Role),
	}
}
