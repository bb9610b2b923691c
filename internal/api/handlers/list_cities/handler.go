package list_cities

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
)

const msgMissingState = "штат обязателен"

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

// Handle GET /cities/{state}
// Неизвестный штат не ошибка: возвращается пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	state := vars["state"]
	if state == "" {
		h.logger.Warn("GET /cities/{state} - Missing state")
		handlers.RespondBadRequest(w, msgMissingState)
		return
	}

	cities := h.directory.Cities(state)

	h.logger.Info("GET /cities/{state} - Returned %d cities for state=%q", len(cities), state)
	handlers.RespondJSON(w, http.StatusOK, cities)
}
