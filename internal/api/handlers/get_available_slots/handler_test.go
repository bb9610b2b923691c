package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/HMS-AppointmentService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/available_slots", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Doctor: "Dr. Rajesh",
		Date:   "25-12-2025",
		Slots:  []string{"10:00 AM", "10:15 AM"},
	}}

	rec := doRequest(t, uc, `{"doctor": "Dr. Rajesh", "date": "25-12-2025"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dr. Rajesh", resp.Doctor)
	assert.Equal(t, []string{"10:00 AM", "10:15 AM"}, resp.Slots)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrInvalidInput}
	rec := doRequest(t, uc, `{"doctor": "", "date": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	rec := doRequest(t, uc, `{"doctor": "Dr. Rajesh", "date": "25-12-2025"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
