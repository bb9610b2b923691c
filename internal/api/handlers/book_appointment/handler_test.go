package book_appointment

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

	bookAppointment "github.com/m04kA/HMS-AppointmentService/internal/usecase/book_appointment"
)

type fakeUseCase struct {
	resp *bookAppointment.Response
	err  error

	gotReq *bookAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookAppointment.Request) (*bookAppointment.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{
	"name": "Anand",
	"phone": "9876543210",
	"state": "Telangana",
	"city": "Hyderabad",
	"hospital": "Apollo Hyderabad",
	"department": "ENT",
	"doctor": "Dr. Rajesh",
	"date": "25-12-2025",
	"time": "10:00 AM"
}`

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(uc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &bookAppointment.Response{ID: 42, Doctor: "Dr. Rajesh"}}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookAppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(42), resp.AppointmentID)

	// Тело запроса передано use case дословно
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "Dr. Rajesh", uc.gotReq.Doctor)
	assert.Equal(t, "10:00 AM", uc.gotReq.Time)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SlotTaken(t *testing.T) {
	uc := &fakeUseCase{err: bookAppointment.ErrSlotTaken}

	rec := doRequest(t, uc, validBody)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["message"])
}

func TestHandle_InvalidTimeSlot(t *testing.T) {
	uc := &fakeUseCase{err: bookAppointment.ErrInvalidTimeSlot}
	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidInput(t *testing.T) {
	uc := &fakeUseCase{err: bookAppointment.ErrInvalidInput}
	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	rec := doRequest(t, uc, validBody)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
