package list_doctors

import (
	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

type Directory interface {
	Doctors(department string) []domain.Doctor
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
