package list_doctors

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
)

const msgMissingDepartment = "отделение обязательно"

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

// Handle GET /doctors/{department}
// Неизвестное отделение не ошибка: возвращается пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	department := vars["department"]
	if department == "" {
		h.logger.Warn("GET /doctors/{department} - Missing department")
		handlers.RespondBadRequest(w, msgMissingDepartment)
		return
	}

	doctors := h.directory.Doctors(department)

	h.logger.Info("GET /doctors/{department} - Returned %d doctors for department=%q", len(doctors), department)
	handlers.RespondJSON(w, http.StatusOK, FromDomainDoctors(doctors))
}
