package slip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
)

func TestRender(t *testing.T) {
	renderer := NewRenderer()

	pdfBytes, err := renderer.Render(&models.AppointmentResponse{
		ID:     7,
		Name:   "Anand",
		Doctor: "Dr. Rajesh",
		Date:   "25-12-2025",
		Time:   "10:00 AM",
	})
	require.NoError(t, err)

	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "appointment_42.pdf", FileName(42))
}
