package domain

// Doctor represents a doctor entry in the reference directory
// Timing это отображаемая строка расписания ("10:00 AM - 1:00 PM"),
// она не участвует в расчете доступных слотов
type Doctor struct {
	Name   string
	Timing string
}

// User represents a login account (admin or doctor)
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         Role
}
