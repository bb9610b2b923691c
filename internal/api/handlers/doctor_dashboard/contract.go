package doctor_dashboard

import (
	"context"

	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

type AppointmentService interface {
	DoctorSchedule(ctx context.Context, principal auth.Principal) ([]models.ScheduleEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
