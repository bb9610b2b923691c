package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/HMS-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "врач и дата обязательны, дата в формате DD-MM-YYYY"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /available_slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailableSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /available_slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("POST /available_slots - Invalid input: doctor=%q, date=%q, error=%v", req.Doctor, req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /available_slots - Failed to get slots: doctor=%q, date=%q, error=%v", req.Doctor, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /available_slots - Slots retrieved: doctor=%q, date=%q, slots_count=%d",
		req.Doctor, req.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
