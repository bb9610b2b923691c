package delete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgMissingPrincipal     = "отсутствует авторизация"
	msgForbidden            = "доступ запрещен"
)

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Success bool `json:"success"`
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

// Handle DELETE /delete/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("DELETE /delete/{id} - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /delete/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), principal, id); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /delete/{id} - Access denied: appointment_id=%d, user=%q, role=%s",
				id, principal.Username, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /delete/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /delete/{id} - Failed to delete: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /delete/{id} - Appointment deleted: appointment_id=%d, admin=%q", id, principal.Username)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Success: true})
}
