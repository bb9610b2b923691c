package get_available_slots

// Request модель запроса на получение доступных слотов
type Request struct {
	Doctor string // имя врача, как оно хранится в бронированиях
	Date   string // дата в формате DD-MM-YYYY
}

// Response модель ответа со списком доступных слотов
// Slots сохраняет порядок сетки из справочника
type Response struct {
	Doctor string
	Date   string
	Slots  []string
}
