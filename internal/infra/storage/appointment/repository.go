package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/HMS-AppointmentService/internal/domain"
	"github.com/m04kA/HMS-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/HMS-AppointmentService/pkg/psqlbuilder"
)

// pq error code "unique_violation"
const pqUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"name",
	"phone",
	"state",
	"city",
	"hospital",
	"department",
	"doctor",
	"date",
	"time",
	"created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Уникальность ключа (doctor, date, time) обеспечивается индексом в БД:
// при конкурентной вставке на тот же ключ ровно одна вставка проходит,
// остальные получают ErrSlotTaken
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"name",
			"phone",
			"state",
			"city",
			"hospital",
			"department",
			"doctor",
			"date",
			"time",
		).
		Values(
			apt.Name,
			apt.Phone,
			apt.State,
			apt.City,
			apt.Hospital,
			apt.Department,
			apt.Doctor,
			apt.Date,
			apt.Time,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time

	return apt, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByKey получает бронирование по точному ключу (doctor, date, time)
// Если контекст выполняется в транзакции, строка блокируется FOR UPDATE
func (r *Repository) GetByKey(ctx context.Context, key domain.SlotKey) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"doctor": key.Doctor,
			"date":   key.Date,
			"time":   key.Time,
		})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByKey")
}

// GetByDoctorAndDate получает бронирования врача на дату, по возрастанию времени
// Используется и для расчета доступных слотов, и для дневного отчета
func (r *Repository) GetByDoctorAndDate(ctx context.Context, doctor, date string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"doctor": doctor, "date": date}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByDoctor получает все бронирования врача, по возрастанию даты
// Используется для кабинета врача
func (r *Repository) GetByDoctor(ctx context.Context, doctor string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"doctor": doctor}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListAll получает все бронирования, новые первыми (id DESC)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		OrderBy("id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Delete удаляет бронирование по ID
// Отсутствующий ID это ошибка: возвращается ErrAppointmentNotFound
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountAll возвращает общее количество бронирований
func (r *Repository) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, "CountAll", nil)
}

// CountByDate возвращает количество бронирований на дату
func (r *Repository) CountByDate(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, "CountByDate", squirrel.Eq{"date": date})
}

// CountGroupByDoctor возвращает количество бронирований по врачам
func (r *Repository) CountGroupByDoctor(ctx context.Context) ([]domain.CountRow, error) {
	return r.countGrouped(ctx, "CountGroupByDoctor", "doctor")
}

// CountGroupByHospital возвращает количество бронирований по госпиталям
func (r *Repository) CountGroupByHospital(ctx context.Context) ([]domain.CountRow, error) {
	return r.countGrouped(ctx, "CountGroupByHospital", "hospital")
}

// CountGroupByMonth возвращает количество бронирований по месяцам
// Месяц извлекается как MM-YYYY из даты в формате DD-MM-YYYY
func (r *Repository) CountGroupByMonth(ctx context.Context) ([]domain.CountRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("SUBSTR(date, 4, 7) AS month", "COUNT(*)").
		From("appointments").
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountGroupByMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountGroupByMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCountRows(rows, "CountGroupByMonth")
}

func (r *Repository) count(ctx context.Context, op string, where interface{}) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").From("appointments")
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return count, nil
}

func (r *Repository) countGrouped(ctx context.Context, op, column string) ([]domain.CountRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(column, "COUNT(*)").
		From("appointments").
		GroupBy(column).
		OrderBy(column + " ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return r.scanCountRows(rows, op)
}

func (r *Repository) scanCountRows(rows *sql.Rows, op string) ([]domain.CountRow, error) {
	result := make([]domain.CountRow, 0)

	for rows.Next() {
		var row domain.CountRow
		if err := rows.Scan(&row.Label, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return result, nil
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Appointment, error) {
	var apt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&apt.ID,
		&apt.Name,
		&apt.Phone,
		&apt.State,
		&apt.City,
		&apt.Hospital,
		&apt.Department,
		&apt.Doctor,
		&apt.Date,
		&apt.Time,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	apt.CreatedAt = createdAt.Time

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс бронирований
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.Name,
			&apt.Phone,
			&apt.State,
			&apt.City,
			&apt.Hospital,
			&apt.Department,
			&apt.Doctor,
			&apt.Date,
			&apt.Time,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqUniqueViolation
	}
	return false
}
