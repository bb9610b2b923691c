package delete_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/api/middleware"
	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

type fakeService struct {
	err   error
	gotID int64
}

func (f *fakeService) Delete(_ context.Context, _ auth.Principal, id int64) error {
	f.gotID = id
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var admin = auth.Principal{Username: "admin", Role: domain.RoleAdmin}

func doRequest(t *testing.T, svc *fakeService, id string, principal *auth.Principal) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/delete/{id}", handler.Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/delete/"+id, nil)
	if principal != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), *principal))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}

	rec := doRequest(t, svc, "7", &admin)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.gotID)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())
}

func TestHandle_MissingPrincipal(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "7", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &fakeService{}, "abc", &admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAppointmentNotFound}
	rec := doRequest(t, svc, "999", &admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_AccessDenied(t *testing.T) {
	svc := &fakeService{err: appointments.ErrAccessDenied}
	rec := doRequest(t, svc, "7", &admin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
