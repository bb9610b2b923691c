package doctor_report

// ReportRequest HTTP request model
type ReportRequest struct {
	Doctor string `json:"doctor"`
	Date   string `json:"date"` // "25-12-2025"
}
