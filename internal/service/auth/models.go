package auth

import (
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Provider провайдер социального входа
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderKakao  Provider = "kakao"
)

// IsValid проверяет, что провайдер поддерживается
func (p Provider) IsValid() bool {
	return p == ProviderGoogle || p == ProviderKakao
}

// RegisterForm данные формы регистрации
type RegisterForm struct {
	Email           string
	Password        string
	PasswordConfirm string
	Name            string
	Phone           string
	Role            domain.UserRole // пустое значение - customer
}

// SocialProfile профиль, полученный от провайдера
// Пустые поля заполняются значениями по умолчанию
type SocialProfile struct {
	Email string
	Name  string
	Phone string
}

// Result результат успешного входа или регистрации
type Result struct {
	Token string
	User  domain.User
}
