package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/HMS-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsRequest HTTP request model
type AvailableSlotsRequest struct {
	Doctor string `json:"doctor"`
	Date   string `json:"date"` // "25-12-2025"
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Doctor string   `json:"doctor"`
	Date   string   `json:"date"`
	Slots  []string `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailableSlotsRequest) ToUseCaseRequest() *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Doctor: r.Doctor,
		Date:   r.Date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Doctor: resp.Doctor,
		Date:   resp.Date,
		Slots:  resp.Slots,
	}
}
