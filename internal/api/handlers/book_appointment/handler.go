package book_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/m04kA/HMS-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены обязательные поля или некорректная дата"
	msgInvalidTimeSlot    = "выбранное время не входит в сетку слотов"
	msgSlotTaken          = "слот уже занят, выберите другое время"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /book - Slot taken: doctor=%q, date=%q, time=%q", req.Doctor, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /book - Invalid time slot: doctor=%q, time=%q", req.Doctor, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: doctor=%q, date=%q, error=%v", req.Doctor, req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /book - Failed to book: doctor=%q, date=%q, time=%q, error=%v",
				req.Doctor, req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Appointment created: appointment_id=%d, doctor=%q, date=%q, time=%q",
		result.ID, req.Doctor, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, BookAppointmentResponse{
		Success:       true,
		AppointmentID: result.ID,
	})
}
