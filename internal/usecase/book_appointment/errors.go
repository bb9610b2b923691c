package book_appointment

import "errors"

var (
	// ErrSlotTaken возвращается, когда ключ (doctor, date, time) уже занят
	ErrSlotTaken = errors.New("book_appointment: slot already booked")

	// ErrInvalidTimeSlot возвращается, когда метка времени не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("book_appointment: time is not a valid slot label")

	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)
