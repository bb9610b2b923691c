package list_hospitals

import (
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingStateOrCity = "штат и город обязательны"
)

type Handler struct {
	directory Directory
	logger    Logger
}

func NewHandler(directory Directory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle POST /hospitals
// Неизвестная пара штат/город не ошибка: возвращается пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req HospitalsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hospitals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.State == "" || req.City == "" {
		h.logger.Warn("POST /hospitals - Missing state or city")
		handlers.RespondBadRequest(w, msgMissingStateOrCity)
		return
	}

	hospitals := h.directory.Hospitals(req.State, req.City)

	h.logger.Info("POST /hospitals - Returned %d hospitals for state=%q city=%q", len(hospitals), req.State, req.City)
	handlers.RespondJSON(w, http.StatusOK, hospitals)
}
