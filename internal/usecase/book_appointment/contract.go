package book_appointment

import (
	"context"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	// GetByKey получает бронирование по точному ключу (doctor, date, time)
	GetByKey(ctx context.Context, key domain.SlotKey) (*domain.Appointment, error)
	// Create создает бронирование; занятый ключ дает storage.ErrSlotTaken
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
}

// SlotDirectory интерфейс справочника слотов
type SlotDirectory interface {
	SlotTemplate() []string
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
