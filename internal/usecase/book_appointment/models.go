package book_appointment

import "time"

// Request модель запроса на создание бронирования
// Поля справочника (State/City/Hospital/Department) сохраняются как есть,
// без сверки с Directory Store
type Request struct {
	Name       string // имя пациента (обязательно)
	Phone      string // телефон (обязательно)
	State      string
	City       string
	Hospital   string
	Department string
	Doctor     string // обязательно
	Date       string // DD-MM-YYYY, обязательно
	Time       string // метка слота из сетки, обязательно
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	Name       string
	Phone      string
	State      string
	City       string
	Hospital   string
	Department string
	Doctor     string
	Date       string
	Time       string
	CreatedAt  time.Time
}
