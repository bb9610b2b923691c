package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/user"
)

// Service сервис аутентификации
// Проверяет пароли (bcrypt) и выдает/разбирает JWT с ролью вызывающего
type Service struct {
	userRepo UserRepository
	secret   []byte
	tokenTTL time.Duration
	logger   Logger
}

// claims полезная нагрузка токена
type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// LoginResult результат успешного входа
type LoginResult struct {
	Role  domain.Role
	Token string
}

// Login проверяет пару username/password и выдает подписанный токен
// Неизвестный пользователь и неверный пароль неразличимы для вызывающего
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown user %q", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for user %q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user %q", username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user %q: %v", username, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user %q authenticated with role %s", username, u.Role)
	return &LoginResult{Role: u.Role, Token: token}, nil
}

// Parse разбирает и валидирует токен, возвращая Principal
func (s *Service) Parse(tokenString string) (Principal, error) {
	var c claims

	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	role := domain.Role(c.Role)
	if !role.IsValid() {
		return Principal{}, ErrInvalidToken
	}

	return Principal{Username: c.Username, Role: role}, nil
}

// HashPassword хеширует пароль для хранения в таблице users
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Service) issueToken(u *domain.User) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: u.Username,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})

	return token.SignedString(s.secret)
}
