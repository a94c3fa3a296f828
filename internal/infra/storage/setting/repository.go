package setting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/dbmetrics"
	"github.com/primobarber/PB-BookingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var settingColumns = []string{"id", "key", "value", "type", "updated_at"}

// Repository репозиторий для работы с настройками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все настройки
func (r *Repository) List(ctx context.Context) ([]*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingColumns...).
		From("settings").
		OrderBy("key ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]*domain.Setting, 0)
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		settings = append(settings, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// GetByKey получает настройку по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingColumns...).
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSetting(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan row: %v", ErrScanRow, err)
	}

	return s, nil
}

// Create создает настройку; дубликат ключа - ErrSettingExists
func (r *Repository) Create(ctx context.Context, s *domain.Setting) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("settings").
		Columns("id", "key", "value", "type").
		Values(s.ID, s.Key, s.Value, s.Type).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrSettingExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time
	return s, nil
}

// UpdateByKey обновляет значение (и опционально тип) настройки
func (r *Repository) UpdateByKey(ctx context.Context, key string, update domain.SettingUpdate) (*domain.Setting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("settings").
		Set("value", update.Value).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"key": key})

	if update.Type != nil {
		updateBuilder = updateBuilder.Set("type", *update.Type)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING id, key, value, type, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByKey - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanSetting(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateByKey - scan row: %v", ErrScanRow, err)
	}

	return s, nil
}

// DeleteByKey удаляет настройку по ключу
func (r *Repository) DeleteByKey(ctx context.Context, key string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByKey - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByKey - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByKey - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSetting(row rowScanner) (*domain.Setting, error) {
	var s domain.Setting
	var updatedAt sql.NullTime

	if err := row.Scan(&s.ID, &s.Key, &s.Value, &s.Type, &updatedAt); err != nil {
		return nil, err
	}

	s.UpdatedAt = updatedAt.Time
	return &s, nil
}
