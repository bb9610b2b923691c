package slip

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
)

// Renderer формирует PDF-талон бронирования (A4)
// Чисто презентационное преобразование одной записи
type Renderer struct{}

// NewRenderer создает новый экземпляр рендерера талонов
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render возвращает PDF-документ с данными бронирования
func (r *Renderer) Render(apt *models.AppointmentResponse) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Hospital Appointment Slip", "", 1, "C", false, 0, "")
	pdf.Ln(8)

	rows := [][2]string{
		{"Patient", apt.Name},
		{"Doctor", apt.Doctor},
		{"Date", apt.Date},
		{"Time", apt.Time},
	}

	pdf.SetFont("Helvetica", "", 12)
	for _, row := range rows {
		pdf.CellFormat(50, 10, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(110, 10, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("slip: render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName возвращает имя файла вложения для бронирования
func FileName(appointmentID int64) string {
	return fmt.Sprintf("appointment_%d.pdf", appointmentID)
}
