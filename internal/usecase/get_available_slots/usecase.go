package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       SlotDirectory
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory SlotDirectory,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистое чтение: результат равен сетке слотов минус занятые метки,
// в порядке сетки. Гарантий, что возвращенный слот останется свободным
// к моменту бронирования, нет — эту гонку закрывает book_appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s", req.Doctor, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем занятые слоты врача на дату
	booked, err := uc.appointmentRepo.GetByDoctorAndDate(ctx, req.Doctor, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Вычитаем занятые метки из сетки
	template := uc.directory.SlotTemplate()
	free := subtractBooked(template, booked)

	uc.logger.Info("GetAvailableSlots: doctor=%s, date=%s, free=%d/%d",
		req.Doctor, req.Date, len(free), len(template))

	return &Response{
		Doctor: req.Doctor,
		Date:   req.Date,
		Slots:  free,
	}, nil
}
