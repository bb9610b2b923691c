package appointments

import (
	"context"
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDoctorAndDate(ctx context.Context, doctor, date string) ([]*domain.Appointment, error)
	GetByDoctor(ctx context.Context, doctor string) ([]*domain.Appointment, error)
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error

	CountAll(ctx context.Context) (int64, error)
	CountByDate(ctx context.Context, date string) (int64, error)
	CountGroupByDoctor(ctx context.Context) ([]domain.CountRow, error)
	CountGroupByMonth(ctx context.Context) ([]domain.CountRow, error)
	CountGroupByHospital(ctx context.Context) ([]domain.CountRow, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
