package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case создания бронирования
type UseCase struct {
	appointmentRepo AppointmentRepository
	directory       SlotDirectory
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	directory SlotDirectory,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		directory:       directory,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Инвариант: на один ключ (doctor, date, time) существует не более одной записи.
// Проверка "ключ свободен" и вставка выполняются в сериализуемой транзакции,
// а сам инвариант дополнительно закреплен уникальным индексом в БД, поэтому
// при N конкурентных запросах на один ключ ровно один завершается успехом,
// остальные получают ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: doctor=%s, date=%s, time=%s", req.Doctor, req.Date, req.Time)

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Метка времени должна входить в сетку слотов
	if err := validateSlotLabel(req.Time, uc.directory.SlotTemplate()); err != nil {
		uc.logger.Warn("BookAppointment: slot label validation failed: %v", err)
		return nil, err
	}

	key := domain.SlotKey{Doctor: req.Doctor, Date: req.Date, Time: req.Time}

	var result *domain.Appointment

	// 3. Проверка и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Проверяем, что ключ свободен
		_, err := uc.appointmentRepo.GetByKey(txCtx, key)
		if err == nil {
			uc.logger.Warn("BookAppointment: slot taken: doctor=%s, date=%s, time=%s",
				key.Doctor, key.Date, key.Time)
			return ErrSlotTaken
		}
		if !errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Error("BookAppointment: failed to check slot: %v", err)
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}

		// 3.2. Ключ свободен — вставляем; поля сохраняются дословно
		apt := &domain.Appointment{
			Name:       req.Name,
			Phone:      req.Phone,
			State:      req.State,
			City:       req.City,
			Hospital:   req.Hospital,
			Department: req.Department,
			Doctor:     req.Doctor,
			Date:       req.Date,
			Time:       req.Time,
		}

		created, err := uc.appointmentRepo.Create(txCtx, apt)
		if err != nil {
			// Конкурент успел раньше: уникальный индекс отклонил вставку
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("BookAppointment: concurrent booking lost the race: doctor=%s, date=%s, time=%s",
					key.Doctor, key.Date, key.Time)
				return ErrSlotTaken
			}
			uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		Name:       result.Name,
		Phone:      result.Phone,
		State:      result.State,
		City:       result.City,
		Hospital:   result.Hospital,
		Department: result.Department,
		Doctor:     result.Doctor,
		Date:       result.Date,
		Time:       result.Time,
		CreatedAt:  result.CreatedAt,
	}, nil
}
