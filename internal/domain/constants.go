package domain

// Формат дат, в котором даты хранятся и отдаются наружу
// Совместим с существующими клиентами: DD-MM-YYYY
const DateFormat = "02-01-2006"

// Business validation constants
const (
	MaxNameLength  = 200
	MaxPhoneLength = 32
)
