package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

const (
	msgMissingToken = "отсутствует токен авторизации"
	msgInvalidToken = "невалидный или истекший токен"
)

type principalContextKey struct{}

// TokenParser разбирает токен в Principal
type TokenParser interface {
	Parse(tokenString string) (auth.Principal, error)
}

// Auth middleware аутентификации по Bearer-токену
// Кладет Principal в контекст запроса; без валидного токена запрос не проходит
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := parser.Parse(token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// WithPrincipal кладет Principal в контекст
func WithPrincipal(ctx context.Context, principal auth.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// GetPrincipal возвращает Principal из контекста запроса
func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(auth.Principal)
	return principal, ok
}
