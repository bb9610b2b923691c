package book_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/HMS-AppointmentService/internal/usecase/get_available_slots"
)

// GetByDoctorAndDate дополняет fakeRepo до контракта get_available_slots
func (f *fakeRepo) GetByDoctorAndDate(_ context.Context, doctor, date string) ([]*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var result []*domain.Appointment
	for key, apt := range f.byKey {
		if key.Doctor == doctor && key.Date == date {
			result = append(result, apt)
		}
	}
	return result, nil
}

// Delete дополняет fakeRepo операцией удаления для сквозного сценария
func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key, apt := range f.byKey {
		if apt.ID == id {
			delete(f.byKey, key)
			return nil
		}
	}
	return nil
}

// Сквозной сценарий: бронирование убирает слот из выдачи,
// удаление возвращает его обратно
func TestBookingFlow(t *testing.T) {
	repo := newFakeRepo()
	dir := &fakeDirectory{slots: testTemplate}

	bookUC := NewUseCase(repo, dir, fakeTxManager{}, nopLogger{})
	slotsUC := getAvailableSlots.NewUseCase(repo, dir, nopLogger{})

	ctx := context.Background()
	slotsReq := &getAvailableSlots.Request{Doctor: "Dr. Rajesh", Date: "25-12-2025"}

	// 1. До бронирования вся сетка свободна
	before, err := slotsUC.Execute(ctx, slotsReq)
	require.NoError(t, err)
	assert.Equal(t, testTemplate, before.Slots)

	// 2. Бронируем слот
	booked, err := bookUC.Execute(ctx, validRequest())
	require.NoError(t, err)

	// 3. Слот исчез из выдачи, порядок остальных сохранен
	after, err := slotsUC.Execute(ctx, slotsReq)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:15 AM", "10:30 AM"}, after.Slots)

	// 4. Повторная выдача идентична (чистое чтение)
	again, err := slotsUC.Execute(ctx, slotsReq)
	require.NoError(t, err)
	assert.Equal(t, after.Slots, again.Slots)

	// 5. Удаление бронирования освобождает слот
	require.NoError(t, repo.Delete(ctx, booked.ID))

	freed, err := slotsUC.Execute(ctx, slotsReq)
	require.NoError(t, err)
	assert.Equal(t, testTemplate, freed.Slots)

	// 6. Слот снова можно забронировать
	_, err = bookUC.Execute(ctx, validRequest())
	require.NoError(t, err)
}
