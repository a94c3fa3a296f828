package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/dbmetrics"
	"github.com/primobarber/PB-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"client_name",
	"client_phone",
	"client_telegram_username",
	"service_id",
	"date",
	"\"time\"",
	"notes",
	"status",
	"source",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись. ID генерируется здесь (uuid4), если не задан.
// Частичный уникальный индекс (date, time) WHERE status <> 'cancelled'
// гарантирует отсутствие двойного бронирования даже при конкурентных
// запросах: нарушение транслируется в ErrSlotTaken
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_name",
			"client_phone",
			"client_telegram_username",
			"service_id",
			"date",
			"\"time\"",
			"notes",
			"status",
			"source",
		).
		Values(
			appt.ID,
			appt.ClientName,
			appt.ClientPhone,
			appt.ClientTelegramUsername,
			appt.ServiceID,
			appt.Date,
			appt.Time,
			appt.Notes,
			appt.Status,
			appt.Source,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// ListWithFilter получает записи с фильтрацией по статусу и периоду
// Сортировка: сначала новые (date DESC, time DESC)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultListLimit
	}
	if limit > domain.MaxListLimit {
		limit = domain.MaxListLimit
	}

	selectBuilder = selectBuilder.
		OrderBy("date DESC, \"time\" DESC").
		Limit(uint64(limit))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetActiveByDate получает все неотмененные записи на конкретную дату,
// отсортированные по времени начала.
// Внутри транзакции добавляет FOR UPDATE для блокировки слотов дня
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("\"time\" ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Update частично обновляет запись; nil поля не изменяются
func (r *Repository) Update(ctx context.Context, id string, update domain.AppointmentUpdate) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("appointments").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}
	if update.Date != nil {
		updateBuilder = updateBuilder.Set("date", *update.Date)
	}
	if update.Time != nil {
		updateBuilder = updateBuilder.Set("\"time\"", *update.Time)
	}
	if update.Notes != nil {
		updateBuilder = updateBuilder.Set("notes", *update.Notes)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(appointmentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Update - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// Delete физически удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
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

// Count подсчитывает записи по фильтру (для дашборда)
func (r *Repository) Count(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("appointments")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.DateFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}
	if filter.DateTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в доменную модель
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.ClientTelegramUsername,
		&appt.ServiceID,
		&appt.Date,
		&appt.Time,
		&appt.Notes,
		&appt.Status,
		&appt.Source,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
