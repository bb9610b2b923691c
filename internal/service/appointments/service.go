package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

// Service административные операции над бронированиями
// Каждая операция получает Principal вызывающего и сама проверяет роль:
// ядро не привязано ни к какому механизму сессий
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ListAll возвращает все бронирования, новые первыми
// Доступно только администратору
func (s *Service) ListAll(ctx context.Context, principal auth.Principal) (*models.AppointmentListResponse, error) {
	if !principal.IsAdmin() {
		s.logger.Warn("ListAll: access denied for user=%q role=%s", principal.Username, principal.Role)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d appointments for admin=%q", len(appointments), principal.Username)
	return models.FromDomainAppointmentList(appointments), nil
}

// Report возвращает бронирования врача на дату, по возрастанию времени
// Доступно только администратору
func (s *Service) Report(ctx context.Context, principal auth.Principal, doctor, date string) (*models.AppointmentListResponse, error) {
	if !principal.IsAdmin() {
		s.logger.Warn("Report: access denied for user=%q role=%s", principal.Username, principal.Role)
		return nil, ErrAccessDenied
	}

	if doctor == "" || date == "" {
		return nil, fmt.Errorf("%w: doctor and date are required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByDoctorAndDate(ctx, doctor, date)
	if err != nil {
		s.logger.Error("Report: repository error for doctor=%q date=%s: %v", doctor, date, err)
		return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Report: fetched %d appointments for doctor=%q date=%s", len(appointments), doctor, date)
	return models.FromDomainAppointmentList(appointments), nil
}

// Delete удаляет бронирование по ID, освобождая его слот
// Отсутствующий ID это ошибка (ErrAppointmentNotFound), а не тихий успех
// Доступно только администратору
func (s *Service) Delete(ctx context.Context, principal auth.Principal, id int64) error {
	if !principal.IsAdmin() {
		s.logger.Warn("Delete: access denied for user=%q role=%s", principal.Username, principal.Role)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted by admin=%q", id, principal.Username)
	return nil
}

// GetByID возвращает бронирование по ID
// Используется для печати талона; доступно без роли
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(apt), nil
}

// DoctorSchedule возвращает расписание врача: его собственные бронирования
// по возрастанию даты. Доступно только роли doctor, и только для себя
func (s *Service) DoctorSchedule(ctx context.Context, principal auth.Principal) ([]models.ScheduleEntry, error) {
	if !principal.IsDoctor() {
		s.logger.Warn("DoctorSchedule: access denied for user=%q role=%s", principal.Username, principal.Role)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.GetByDoctor(ctx, principal.Username)
	if err != nil {
		s.logger.Error("DoctorSchedule: repository error for doctor=%q: %v", principal.Username, err)
		return nil, fmt.Errorf("%w: DoctorSchedule - repository error: %v", ErrInternal, err)
	}

	entries := make([]models.ScheduleEntry, len(appointments))
	for i, apt := range appointments {
		entries[i] = models.ScheduleEntry{
			Patient:  apt.Name,
			Hospital: apt.Hospital,
			Date:     apt.Date,
			Time:     apt.Time,
		}
	}

	s.logger.Info("DoctorSchedule: fetched %d appointments for doctor=%q", len(entries), principal.Username)
	return entries, nil
}

// Analytics возвращает сводку по всем бронированиям
// "Сегодня" считается по текущей дате процесса в момент запроса
// Доступно только администратору
func (s *Service) Analytics(ctx context.Context, principal auth.Principal) (*models.AnalyticsResponse, error) {
	if !principal.IsAdmin() {
		s.logger.Warn("Analytics: access denied for user=%q role=%s", principal.Username, principal.Role)
		return nil, ErrAccessDenied
	}

	total, err := s.appointmentRepo.CountAll(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to count all: %v", err)
		return nil, fmt.Errorf("%w: Analytics - count all: %v", ErrInternal, err)
	}

	today := s.timeProvider.Now().Format(domain.DateFormat)
	todayCount, err := s.appointmentRepo.CountByDate(ctx, today)
	if err != nil {
		s.logger.Error("Analytics: failed to count today: %v", err)
		return nil, fmt.Errorf("%w: Analytics - count today: %v", ErrInternal, err)
	}

	byDoctor, err := s.appointmentRepo.CountGroupByDoctor(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to group by doctor: %v", err)
		return nil, fmt.Errorf("%w: Analytics - group by doctor: %v", ErrInternal, err)
	}

	byMonth, err := s.appointmentRepo.CountGroupByMonth(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to group by month: %v", err)
		return nil, fmt.Errorf("%w: Analytics - group by month: %v", ErrInternal, err)
	}

	byHospital, err := s.appointmentRepo.CountGroupByHospital(ctx)
	if err != nil {
		s.logger.Error("Analytics: failed to group by hospital: %v", err)
		return nil, fmt.Errorf("%w: Analytics - group by hospital: %v", ErrInternal, err)
	}

	s.logger.Info("Analytics: total=%d today=%d for admin=%q", total, todayCount, principal.Username)

	return models.FromDomainAnalytics(&domain.AnalyticsReport{
		Total:      total,
		Today:      todayCount,
		ByDoctor:   byDoctor,
		ByMonth:    byMonth,
		ByHospital: byHospital,
	}), nil
}
