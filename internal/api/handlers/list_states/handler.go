package list_states

import (
	"net/http"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
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

// Handle GET /states
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	states := h.directory.States()

	h.logger.Info("GET /states - Returned %d states", len(states))
	handlers.RespondJSON(w, http.StatusOK, states)
}
