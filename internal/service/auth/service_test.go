package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/user"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	err   error
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()

	adminHash, err := HashPassword("admin123")
	require.NoError(t, err)
	doctorHash, err := HashPassword("doctor123")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*domain.User{
		"admin":      {ID: 1, Username: "admin", PasswordHash: adminHash, Role: domain.RoleAdmin},
		"Dr. Rajesh": {ID: 2, Username: "Dr. Rajesh", PasswordHash: doctorHash, Role: domain.RoleDoctor},
	}}

	return NewService(repo, testSecret, time.Hour, nopLogger{}), repo
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleAdmin, result.Role)
	assert.NotEmpty(t, result.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	// Неизвестный пользователь неотличим от неверного пароля
	_, err := svc.Login(context.Background(), "nobody", "admin123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestLogin_RepositoryError(t *testing.T) {
	svc, repo := newTestService(t)
	repo.err = errors.New("connection refused")

	_, err := svc.Login(context.Background(), "admin", "admin123")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestParse_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Login(context.Background(), "Dr. Rajesh", "doctor123")
	require.NoError(t, err)

	principal, err := svc.Parse(result.Token)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Rajesh", principal.Username)
	assert.Equal(t, domain.RoleDoctor, principal.Role)
	assert.True(t, principal.IsDoctor())
	assert.False(t, principal.IsAdmin())
}

func TestParse_Garbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Parse("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParse_WrongSecret(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	other := NewService(&fakeUserRepo{}, "other-secret", time.Hour, nopLogger{})
	_, err = other.Parse(result.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestParse_ExpiredToken(t *testing.T) {
	adminHash, err := HashPassword("admin123")
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*domain.User{
		"admin": {ID: 1, Username: "admin", PasswordHash: adminHash, Role: domain.RoleAdmin},
	}}

	// Отрицательный TTL: токен истекает в момент выдачи
	svc := NewService(repo, testSecret, -time.Minute, nopLogger{})

	result, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	_, err = svc.Parse(result.Token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", hash)

	// Два хеша одного пароля различны (случайная соль)
	other, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}
