package delete_appointment

import (
	"context"

	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

type AppointmentService interface {
	Delete(ctx context.Context, principal auth.Principal, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
