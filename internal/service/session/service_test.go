package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	sessionRepo "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

type failingRepo struct {
	state   *sessionRepo.State
	loadErr error
	saveErr error
}

func (r *failingRepo) Load() (*sessionRepo.State, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.state, nil
}

func (r *failingRepo) Save(*sessionRepo.State) error { return r.saveErr }

func newService(t *testing.T) (*Service, *sessionRepo.Repository) {
	t.Helper()
	repo := sessionRepo.NewRepository(filepath.Join(t.TempDir(), "session.toml"))
	svc, err := NewService(repo, logger.NewNop())
	require.NoError(t, err)
	return svc, repo
}

func TestService_RequireAuth(t *testing.T) {
	svc, _ := newService(t)

	called := false
	err := svc.RequireAuth(func() error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, ErrLoginRequired))
	assert.False(t, called)

	require.NoError(t, svc.SetSession("token-1", domain.User{ID: 1, Name: "홍길동"}))

	err = svc.RequireAuth(func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestService_SessionPersistsAcrossRestart(t *testing.T) {
	svc, repo := newService(t)

	require.NoError(t, svc.SetSession("token-1", domain.User{ID: 1, Email: "a@b.c", Role: domain.RoleShopOwner}))
	require.NoError(t, svc.SetDarkMode(true))

	restarted, err := NewService(repo, logger.NewNop())
	require.NoError(t, err)

	assert.True(t, restarted.IsAuthenticated())
	assert.Equal(t, "token-1", restarted.Token())
	assert.True(t, restarted.DarkMode())

	user, ok := restarted.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, domain.RoleShopOwner, user.Role)
}

func TestService_ClearKeepsTheme(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.SetSession("token-1", domain.User{ID: 1}))
	require.NoError(t, svc.SetDarkMode(true))
	require.NoError(t, svc.Clear())

	assert.False(t, svc.IsAuthenticated())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
	assert.True(t, svc.DarkMode())
}

func TestService_ToggleDarkMode(t *testing.T) {
	svc, _ := newService(t)

	enabled, err := svc.ToggleDarkMode()
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = svc.ToggleDarkMode()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestService_SetSessionRequiresToken(t *testing.T) {
	svc, _ := newService(t)
	assert.True(t, errors.Is(svc.SetSession("", domain.User{}), ErrInvalidSession))
}

func TestService_SaveFailureKeepsState(t *testing.T) {
	repo := &failingRepo{state: &sessionRepo.State{}, saveErr: errors.New("disk full")}
	svc, err := NewService(repo, logger.NewNop())
	require.NoError(t, err)

	err = svc.SetSession("token-1", domain.User{ID: 1})
	assert.True(t, errors.Is(err, ErrInternal))
	assert.False(t, svc.IsAuthenticated())
}

func TestNewService_LoadFailure(t *testing.T) {
	_, err := NewService(&failingRepo{loadErr: errors.New("boom")}, logger.NewNop())
	assert.True(t, errors.Is(err, ErrInternal))
}
