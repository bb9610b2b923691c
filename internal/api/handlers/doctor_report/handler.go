package doctor_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "врач и дата обязательны"
	msgMissingPrincipal   = "отсутствует авторизация"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /report
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /report - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	var req ReportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /report - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Report(r.Context(), principal, req.Doctor, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /report - Access denied: user=%q, role=%s", principal.Username, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /report - Invalid input: doctor=%q, date=%q", req.Doctor, req.Date)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /report - Failed to build report: doctor=%q, date=%q, error=%v", req.Doctor, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /report - Returned %d appointments for doctor=%q date=%q", result.Total, req.Doctor, req.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
