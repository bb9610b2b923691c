package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/HMS-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/HMS-AppointmentService/internal/service/appointments/models"
	"github.com/m04kA/HMS-AppointmentService/internal/service/auth"
)

func labels(rows []models.CountRow) []string {
	result := make([]string, len(rows))
	for i, row := range rows {
		result[i] = row.Label
	}
	return result
}

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error

	deletedIDs []int64
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, apt := range f.appointments {
		if apt.ID == id {
			return apt, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeRepo) GetByDoctorAndDate(_ context.Context, doctor, date string) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Appointment
	for _, apt := range f.appointments {
		if apt.Doctor == doctor && apt.Date == date {
			result = append(result, apt)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetByDoctor(_ context.Context, doctor string) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Appointment
	for _, apt := range f.appointments {
		if apt.Doctor == doctor {
			result = append(result, apt)
		}
	}
	return result, nil
}

func (f *fakeRepo) ListAll(_ context.Context) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, apt := range f.appointments {
		if apt.ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			f.deletedIDs = append(f.deletedIDs, id)
			return nil
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeRepo) CountAll(_ context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.appointments)), nil
}

func (f *fakeRepo) CountByDate(_ context.Context, date string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, apt := range f.appointments {
		if apt.Date == date {
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CountGroupByDoctor(_ context.Context) ([]domain.CountRow, error) {
	return f.countGrouped(func(apt *domain.Appointment) string { return apt.Doctor })
}

func (f *fakeRepo) CountGroupByMonth(_ context.Context) ([]domain.CountRow, error) {
	// date имеет вид DD-MM-YYYY, месяц это MM-YYYY
	return f.countGrouped(func(apt *domain.Appointment) string { return apt.Date[3:] })
}

func (f *fakeRepo) CountGroupByHospital(_ context.Context) ([]domain.CountRow, error) {
	return f.countGrouped(func(apt *domain.Appointment) string { return apt.Hospital })
}

func (f *fakeRepo) countGrouped(key func(*domain.Appointment) string) ([]domain.CountRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	counts := make(map[string]int64)
	var order []string
	for _, apt := range f.appointments {
		k := key(apt)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	rows := make([]domain.CountRow, len(order))
	for i, k := range order {
		rows[i] = domain.CountRow{Label: k, Count: counts[k]}
	}
	return rows, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	admin  = auth.Principal{Username: "admin", Role: domain.RoleAdmin}
	doctor = auth.Principal{Username: "Dr. Rajesh", Role: domain.RoleDoctor}
)

func testAppointments() []*domain.Appointment {
	return []*domain.Appointment{
		{ID: 3, Name: "Chitra", Phone: "9000000003", Hospital: "Apollo Hyderabad", Doctor: "Dr. Rajesh", Date: "26-12-2025", Time: "10:15 AM"},
		{ID: 2, Name: "Bhavna", Phone: "9000000002", Hospital: "Manipal Hospital", Doctor: "Dr. Kumar", Date: "25-12-2025", Time: "10:00 AM"},
		{ID: 1, Name: "Anand", Phone: "9000000001", Hospital: "Apollo Hyderabad", Doctor: "Dr. Rajesh", Date: "25-12-2025", Time: "10:00 AM"},
	}
}

func newTestService(repo *fakeRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 12, 25, 12, 0, 0, 0, time.UTC)}
	return svc
}

func TestListAll(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	resp, err := svc.ListAll(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, int64(3), resp.Appointments[0].ID)
}

func TestListAll_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	_, err := svc.ListAll(context.Background(), doctor)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestReport(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	resp, err := svc.Report(context.Background(), admin, "Dr. Rajesh", "25-12-2025")
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Anand", resp.Appointments[0].Name)
}

func TestReport_Validation(t *testing.T) {
	svc := newTestService(&fakeRepo{})

	_, err := svc.Report(context.Background(), admin, "", "25-12-2025")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.Report(context.Background(), admin, "Dr. Rajesh", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestReport_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	_, err := svc.Report(context.Background(), doctor, "Dr. Rajesh", "25-12-2025")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestDelete(t *testing.T) {
	repo := &fakeRepo{appointments: testAppointments()}
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), admin, 2))
	assert.Equal(t, []int64{2}, repo.deletedIDs)

	// Повторное удаление того же ID это NotFound, а не тихий успех
	err := svc.Delete(context.Background(), admin, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
}

func TestDelete_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	err := svc.Delete(context.Background(), admin, 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
}

func TestDelete_AccessDenied(t *testing.T) {
	repo := &fakeRepo{appointments: testAppointments()}
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), doctor, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccessDenied))
	assert.Empty(t, repo.deletedIDs)
}

func TestGetByID(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	apt, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anand", apt.Name)

	_, err = svc.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAppointmentNotFound))
}

func TestDoctorSchedule(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	entries, err := svc.DoctorSchedule(context.Background(), doctor)
	require.NoError(t, err)

	// Только записи самого врача, из токена
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.NotEmpty(t, entry.Patient)
		assert.NotEmpty(t, entry.Date)
	}
}

func TestDoctorSchedule_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	_, err := svc.DoctorSchedule(context.Background(), admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestAnalytics(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	resp, err := svc.Analytics(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Total)
	// timeProvider зафиксирован на 25-12-2025
	assert.Equal(t, int64(2), resp.Today)

	assert.ElementsMatch(t, labels(resp.ByDoctor), []string{"Dr. Rajesh", "Dr. Kumar"})
	assert.ElementsMatch(t, labels(resp.ByHospital), []string{"Apollo Hyderabad", "Manipal Hospital"})
	assert.ElementsMatch(t, labels(resp.ByMonth), []string{"12-2025"})
}

func TestAnalytics_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{appointments: testAppointments()})

	_, err := svc.Analytics(context.Background(), doctor)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAccessDenied))
}

func TestAnalytics_RepositoryError(t *testing.T) {
	svc := newTestService(&fakeRepo{err: errors.New("connection refused")})

	_, err := svc.Analytics(context.Background(), admin)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))
}
