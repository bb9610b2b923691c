package analytics

import (
	"context"

	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

type AppointmentService interface {
	Analytics(ctx context.Context, principal auth.Principal) (*models.AnalyticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
