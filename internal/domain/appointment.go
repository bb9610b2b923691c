package domain

import "time"

// Appointment represents a booked appointment in the system
// Поля справочника (state/city/hospital/department) хранятся как есть,
// без проверки по Directory Store
type Appointment struct {
	ID         int64
	Name       string // имя пациента
	Phone      string
	State      string
	City       string
	Hospital   string
	Department string
	Doctor     string
	Date       string // дата в формате DD-MM-YYYY
	Time       string // метка слота, например "10:15 AM"

	CreatedAt time.Time
}

// SlotKey ключ уникальности бронирования
// Для одного ключа в системе может существовать не более одной записи
type SlotKey struct {
	Doctor string
	Date   string
	Time   string
}

// Key возвращает ключ (doctor, date, time) этого бронирования
func (a *Appointment) Key() SlotKey {
	return SlotKey{Doctor: a.Doctor, Date: a.Date, Time: a.Time}
}
