package get_available_slots

import "github.com/m04kA/HMS-AppointmentService/internal/domain"

// subtractBooked возвращает слоты сетки, не занятые ни одним бронированием
// Порядок меток следует порядку сетки; занятые метки, отсутствующие в сетке,
// игнорируются
func subtractBooked(template []string, booked []*domain.Appointment) []string {
	if len(booked) == 0 {
		return template
	}

	taken := make(map[string]struct{}, len(booked))
	for _, apt := range booked {
		taken[apt.Time] = struct{}{}
	}

	free := make([]string, 0, len(template))
	for _, slot := range template {
		if _, ok := taken[slot]; !ok {
			free = append(free, slot)
		}
	}

	return free
}
