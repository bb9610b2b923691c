package analytics

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments"
)

const (
	msgMissingPrincipal = "отсутствует авторизация"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /analytics_data
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /analytics_data - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	result, err := h.service.Analytics(r.Context(), principal)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /analytics_data - Access denied: user=%q, role=%s", principal.Username, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /analytics_data - Failed to build analytics: user=%q, error=%v", principal.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics_data - Analytics returned: total=%d, today=%d, admin=%q",
		result.Total, result.Today, principal.Username)
	handlers.RespondJSON(w, http.StatusOK, result)
}
