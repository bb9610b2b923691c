package domain

// CountRow одна строка группировки: метка и количество бронирований
type CountRow struct {
	Label string
	Count int64
}

// AnalyticsReport сводка по всем бронированиям
// Today считается относительно текущей даты процесса на момент запроса
type AnalyticsReport struct {
	Total      int64
	Today      int64
	ByDoctor   []CountRow
	ByMonth    []CountRow
	ByHospital []CountRow
}
