package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/api/handlers"
)

// Pinger проверяет доступность базы данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse HTTP response model
type HealthResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unavailable"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
