package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
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

var workingHoursColumns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"interval_minutes",
	"active",
}

// Repository репозиторий календарных правил: рабочие часы по дням недели
// и заблокированные даты
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарных правил
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListWorkingHours получает все правила рабочих часов, по дням недели
func (r *Repository) ListWorkingHours(ctx context.Context) ([]*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.WorkingHoursRule, 0)
	for rows.Next() {
		rule, err := scanWorkingHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListWorkingHours - scan row: %v", ErrScanRow, err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWorkingHours - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetActiveWorkingHoursByDay получает активное правило рабочих часов
// на день недели (0=понедельник .. 6=воскресенье)
func (r *Repository) GetActiveWorkingHoursByDay(ctx context.Context, dayOfWeek int) (*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(workingHoursColumns...).
		From("working_hours").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWorkingHoursByDay - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanWorkingHours(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveWorkingHoursByDay - scan row: %v", ErrScanRow, err)
	}

	return rule, nil
}

// CreateWorkingHours создает правило рабочих часов
// UNIQUE(day_of_week) гарантирует не больше одного правила на день
func (r *Repository) CreateWorkingHours(ctx context.Context, rule *domain.WorkingHoursRule) (*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns(workingHoursColumns...).
		Values(rule.ID, rule.DayOfWeek, rule.StartTime, rule.EndTime, rule.IntervalMinutes, rule.Active).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateWorkingHours - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrWorkingHoursExists
		}
		return nil, fmt.Errorf("%w: CreateWorkingHours - execute insert: %v", ErrExecQuery, err)
	}

	return rule, nil
}

// UpdateWorkingHours полностью заменяет правило для дня недели
func (r *Repository) UpdateWorkingHours(ctx context.Context, dayOfWeek int, rule *domain.WorkingHoursRule) (*domain.WorkingHoursRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("working_hours").
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("interval_minutes", rule.IntervalMinutes).
		Set("active", rule.Active).
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateWorkingHours - scan row: %v", ErrScanRow, err)
	}

	rule.DayOfWeek = dayOfWeek
	return rule, nil
}

// DeleteWorkingHours удаляет правило для дня недели
func (r *Repository) DeleteWorkingHours(ctx context.Context, dayOfWeek int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteWorkingHours - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteWorkingHours - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteWorkingHours - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWorkingHoursNotFound
	}

	return nil
}

// ListBlockedDates получает все заблокированные даты
func (r *Repository) ListBlockedDates(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "reason").
		From("blocked_dates").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		bd, err := scanBlockedDate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %v", ErrScanRow, err)
		}
		dates = append(dates, bd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// GetBlockedDate получает заблокированную дату ("YYYY-MM-DD")
func (r *Repository) GetBlockedDate(ctx context.Context, date string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "reason").
		From("blocked_dates").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDate - build select query: %v", ErrBuildQuery, err)
	}

	bd, err := scanBlockedDate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockedDateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockedDate - scan row: %v", ErrScanRow, err)
	}

	return bd, nil
}

// CreateBlockedDate блокирует дату; повторная блокировка - ErrDateAlreadyBlocked
func (r *Repository) CreateBlockedDate(ctx context.Context, bd *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("date", "reason").
		Values(bd.Date, bd.Reason).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDateAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: CreateBlockedDate - execute insert: %v", ErrExecQuery, err)
	}

	return bd, nil
}

// DeleteBlockedDate разблокирует дату
func (r *Repository) DeleteBlockedDate(ctx context.Context, date string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.Eq{"date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingHours(row rowScanner) (*domain.WorkingHoursRule, error) {
	var rule domain.WorkingHoursRule
	err := row.Scan(
		&rule.ID,
		&rule.DayOfWeek,
		&rule.StartTime,
		&rule.EndTime,
		&rule.IntervalMinutes,
		&rule.Active,
	)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func scanBlockedDate(row rowScanner) (*domain.BlockedDate, error) {
	var bd domain.BlockedDate
	var date time.Time

	if err := row.Scan(&date, &bd.Reason); err != nil {
		return nil, err
	}

	bd.Date = date.Format(domain.DateFormat)
	return &bd, nil
}
