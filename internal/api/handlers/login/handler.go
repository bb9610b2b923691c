package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "логин и пароль обязательны"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /login_user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login_user - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Username == "" || req.Password == "" {
		h.logger.Warn("POST /login_user - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			h.logger.Warn("POST /login_user - Invalid credentials: username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /login_user - Failed to authenticate: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login_user - User authenticated: username=%q, role=%s", req.Username, result.Role)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Role:    string(result.Role),
		Token:   result.Token,
	})
}
