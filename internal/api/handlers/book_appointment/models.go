package book_appointment

import (
	bookAppointment "github.com/m04kA/HMS-AppointmentService/internal/usecase/book_appointment"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	State      string `json:"state"`
	City       string `json:"city"`
	Hospital   string `json:"hospital"`
	Department string `json:"department"`
	Doctor     string `json:"doctor"`
	Date       string `json:"date"` // "25-12-2025"
	Time       string `json:"time"` // "10:00 AM"
}

// BookAppointmentResponse HTTP response model
type BookAppointmentResponse struct {
	Success       bool  `json:"success"`
	AppointmentID int64 `json:"appointment_id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() *bookAppointment.Request {
	return &bookAppointment.Request{
		Name:       r.Name,
		Phone:      r.Phone,
		State:      r.State,
		City:       r.City,
		Hospital:   r.Hospital,
		Department: r.Department,
		Doctor:     r.Doctor,
		Date:       r.Date,
		Time:       r.Time,
	}
}
