package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/bookingapi"
)

// Телефон по умолчанию для профиля социального входа
const defaultSocialPhone = "010-0000-0000"

// Service сервис входа, регистрации и выхода
type Service struct {
	client  APIClient
	session SessionStore
	logger  Logger
	newUID  func() string
}

// NewService создает новый экземпляр сервиса
func NewService(client APIClient, session SessionStore, logger Logger) *Service {
	return &Service{
		client:  client,
		session: session,
		logger:  logger,
		newUID:  uuid.NewString,
	}
}

// Login выполняет вход по email и паролю и сохраняет сессию
func (s *Service) Login(ctx context.Context, email, password string) (*Result, error) {
	s.logger.Info("Login: attempting login for email=%s", email)

	resp, err := s.client.Login(ctx, bookingapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		if errors.Is(err, bookingapi.ErrUnauthorized) || errors.Is(err, bookingapi.ErrBadRequest) {
			s.logger.Warn("Login: credentials rejected for email=%s", email)
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		s.logger.Error("Login: request failed for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	return s.store(resp)
}

// Register проверяет форму и регистрирует пользователя
// При ошибках формы запрос на сервер не отправляется
func (s *Service) Register(ctx context.Context, form RegisterForm) (*Result, error) {
	if messages := validateRegisterForm(form); len(messages) > 0 {
		s.logger.Warn("Register: form validation failed: %d errors", len(messages))
		return nil, &ValidationError{Messages: messages}
	}

	role := form.Role
	if role == "" {
		role = domain.RoleCustomer
	}

	s.logger.Info("Register: registering email=%s role=%s", form.Email, role)

	resp, err := s.client.Register(ctx, bookingapi.RegisterRequest{
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
		Phone:    form.Phone,
		Role:     string(role),
	})
	if err != nil {
		// Ошибки проверки на стороне сервера показываются пользователю как есть
		if messages := bookingapi.ServerMessages(err); len(messages) > 0 && errors.Is(err, bookingapi.ErrBadRequest) {
			s.logger.Warn("Register: server rejected form for email=%s", form.Email)
			return nil, &ValidationError{Messages: messages}
		}
		s.logger.Error("Register: request failed for email=%s: %v", form.Email, err)
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	return s.store(resp)
}

// SocialLogin выполняет вход через google или kakao
// uid формируется как <provider>_<uuid>, настоящий OAuth обмен не выполняется
func (s *Service) SocialLogin(ctx context.Context, provider Provider, profile SocialProfile) (*Result, error) {
	if !provider.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}

	req := bookingapi.SocialLoginRequest{
		Provider: string(provider),
		UID:      fmt.Sprintf("%s_%s", provider, s.newUID()),
		Email:    profile.Email,
		Name:     profile.Name,
		Phone:    profile.Phone,
	}
	if req.Email == "" {
		req.Email = fmt.Sprintf("user@%s.com", provider)
	}
	if req.Name == "" {
		req.Name = fmt.Sprintf("%s 사용자", provider)
	}
	if req.Phone == "" {
		req.Phone = defaultSocialPhone
	}

	s.logger.Info("SocialLogin: provider=%s uid=%s", provider, req.UID)

	resp, err := s.client.SocialLogin(ctx, req)
	if err != nil {
		s.logger.Error("SocialLogin: request failed for provider=%s: %v", provider, err)
		return nil, fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}

	return s.store(resp)
}

// Logout удаляет сохраненную сессию
func (s *Service) Logout() error {
	if err := s.session.Clear(); err != nil {
		s.logger.Error("Logout: failed to clear session: %v", err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
	s.logger.Info("Logout: session cleared")
	return nil
}

// CurrentUser возвращает пользователя текущей сессии
func (s *Service) CurrentUser() (*domain.User, bool) {
	return s.session.CurrentUser()
}

func (s *Service) store(resp *bookingapi.AuthResponse) (*Result, error) {
	user := resp.User.ToDomain()
	if err := s.session.SetSession(resp.Token, user); err != nil {
		s.logger.Error("store: failed to save session for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return &Result{Token: resp.Token, User: user}, nil
}
