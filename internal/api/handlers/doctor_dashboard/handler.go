package doctor_dashboard

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
)

const (
	msgMissingPrincipal = "отсутствует авторизация"
	msgForbidden        = "доступ запрещен"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Doctor       string                 `json:"doctor"`
	Appointments []models.ScheduleEntry `json:"appointments"`
}

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

// Handle GET /doctor_dashboard
// Врач видит только собственное расписание: имя берется из токена
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /doctor_dashboard - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	entries, err := h.service.DoctorSchedule(r.Context(), principal)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /doctor_dashboard - Access denied: user=%q, role=%s", principal.Username, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /doctor_dashboard - Failed to get schedule: user=%q, error=%v", principal.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctor_dashboard - Returned %d appointments for doctor=%q", len(entries), principal.Username)
	handlers.RespondJSON(w, http.StatusOK, DashboardResponse{
		Doctor:       principal.Username,
		Appointments: entries,
	})
}
