package get_available_slots

import (
	"context"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	// GetByDoctorAndDate получает все бронирования врача на конкретную дату
	GetByDoctorAndDate(ctx context.Context, doctor, date string) ([]*domain.Appointment, error)
}

// SlotDirectory интерфейс справочника слотов
type SlotDirectory interface {
	// SlotTemplate возвращает фиксированную упорядоченную сетку слотов на день
	SlotTemplate() []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
