package list_doctors

import (
	"github.com/m04kA/HMS-AppointmentService/internal/domain"
)

// DoctorResponse HTTP response model
type DoctorResponse struct {
	Name   string `json:"name"`
	Timing string `json:"timing"`
}

// FromDomainDoctors конвертирует записи справочника в HTTP response
func FromDomainDoctors(doctors []domain.Doctor) []DoctorResponse {
	result := make([]DoctorResponse, len(doctors))
	for i, d := range doctors {
		result[i] = DoctorResponse{
			Name:   d.Name,
			Timing: d.Timing,
		}
	}
	return result
}
