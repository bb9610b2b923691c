package book_appointment

import "fmt"

// validateRequest проверяет обязательные поля запроса
func validateRequest(req *Request) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if req.Doctor == "" {
		return fmt.Errorf("%w: doctor is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	return nil
}

// validateSlotLabel проверяет, что метка времени входит в сетку слотов
func validateSlotLabel(slot string, template []string) error {
	for _, label := range template {
		if label == slot {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, slot)
}
