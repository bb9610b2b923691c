package models

import (
	"time"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// AppointmentResponse бронирование в ответе API
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	State      string `json:"state"`
	City       string `json:"city"`
	Hospital   string `json:"hospital"`
	Department string `json:"department"`
	Doctor     string `json:"doctor"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// AppointmentListResponse список бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// ScheduleEntry строка расписания врача: имя пациента, госпиталь, дата, время
type ScheduleEntry struct {
	Patient  string `json:"patient"`
	Hospital string `json:"hospital"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// AnalyticsResponse сводка для панели аналитики
type AnalyticsResponse struct {
	Total      int64      `json:"total"`
	Today      int64      `json:"today"`
	ByDoctor   []CountRow `json:"doctor_data"`
	ByMonth    []CountRow `json:"monthly_data"`
	ByHospital []CountRow `json:"hospital_data"`
}

// CountRow метка группировки и количество
type CountRow struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// FromDomainAppointment конвертирует доменную модель в ответ API
func FromDomainAppointment(apt *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:         apt.ID,
		Name:       apt.Name,
		Phone:      apt.Phone,
		State:      apt.State,
		City:       apt.City,
		Hospital:   apt.Hospital,
		Department: apt.Department,
		Doctor:     apt.Doctor,
		Date:       apt.Date,
		Time:       apt.Time,
	}
	if !apt.CreatedAt.IsZero() {
		resp.CreatedAt = apt.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

// FromDomainAppointmentList конвертирует список бронирований
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, len(appointments))
	for i, apt := range appointments {
		items[i] = *FromDomainAppointment(apt)
	}
	return &AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}
}

// FromDomainAnalytics конвертирует сводку аналитики
func FromDomainAnalytics(report *domain.AnalyticsReport) *AnalyticsResponse {
	return &AnalyticsResponse{
		Total:      report.Total,
		Today:      report.Today,
		ByDoctor:   fromDomainCountRows(report.ByDoctor),
		ByMonth:    fromDomainCountRows(report.ByMonth),
		ByHospital: fromDomainCountRows(report.ByHospital),
	}
}

func fromDomainCountRows(rows []domain.CountRow) []CountRow {
	result := make([]CountRow, len(rows))
	for i, row := range rows {
		result[i] = CountRow{Label: row.Label, Count: row.Count}
	}
	return result
}
