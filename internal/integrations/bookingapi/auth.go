package bookingapi

import (
	"context"
	"fmt"
	"net/http"
)

// Login выполняет вход по email и паролю
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/login", req)
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/register", req)
}

// SocialLogin выполняет вход через внешнего провайдера
func (c *Client) SocialLogin(ctx context.Context, req SocialLoginRequest) (*AuthResponse, error) {
	return c.authenticate(ctx, "/social_login", req)
}

func (c *Client) authenticate(ctx context.Context, path string, body interface{}) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to authenticate via %s: %w", path, err)
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: empty token in %s response", ErrInvalidResponse, path)
	}
	return &resp, nil
}
