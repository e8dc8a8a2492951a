package auth

import (
	"regexp"
	"strings"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
)

// Сообщения об ошибках формы регистрации
const (
	msgPasswordMismatch = "Пароли не совпадают"
	msgPasswordTooShort = "Пароль должен содержать не менее 6 символов"
	msgInvalidPhone     = "Неверный формат телефона (пример: 010-1234-5678)"
	msgEmailRequired    = "Укажите email"
	msgInvalidRole      = "Неизвестная роль пользователя"
)

var phonePattern = regexp.MustCompile(`^010-\d{4}-\d{4}$`)

// validateRegisterForm собирает все ошибки формы, а не только первую
func validateRegisterForm(form RegisterForm) []string {
	var messages []string

	if strings.TrimSpace(form.Email) == "" {
		messages = append(messages, msgEmailRequired)
	}
	if form.Password != form.PasswordConfirm {
		messages = append(messages, msgPasswordMismatch)
	}
	if len([]rune(form.Password)) < domain.MinPasswordLength {
		messages = append(messages, msgPasswordTooShort)
	}
	if !phonePattern.MatchString(form.Phone) {
		messages = append(messages, msgInvalidPhone)
	}
	if form.Role != "" && form.Role != domain.RoleCustomer && form.Role != domain.RoleShopOwner {
		messages = append(messages, msgInvalidRole)
	}

	return messages
}
