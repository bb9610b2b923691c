package auth

import "github.com/m04kA/HMS-AppointmentService/internal/domain"

// Principal аутентифицированный вызывающий
// Ядро доверяет только этой структуре: механизм сессии (JWT) в него не протекает
type Principal struct {
	Username string
	Role     domain.Role
}

// IsAdmin returns true if the caller has the admin role
func (p Principal) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

// IsDoctor returns true if the caller has the doctor role
func (p Principal) IsDoctor() bool {
	return p.Role == domain.RoleDoctor
}
