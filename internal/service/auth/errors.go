package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном username/password
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken возвращается при невалидном или истекшем токене
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
