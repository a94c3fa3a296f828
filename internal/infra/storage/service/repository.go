package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/primobarber/PB-BookingService/internal/domain"
	"github.com/primobarber/PB-BookingService/pkg/dbmetrics"
	"github.com/primobarber/PB-BookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"price",
	"duration",
	"image",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом услуг
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую услугу. ID генерируется здесь (uuid4), если не задан
func (r *Repository) Create(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("services").
		Columns("id", "name", "description", "price", "duration", "image", "active").
		Values(svc.ID, svc.Name, svc.Description, svc.Price, svc.Duration, svc.Image, svc.Active).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return svc, nil
}

// GetByID получает услугу по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// GetByIDs получает услуги по набору ID одним запросом
// Используется для batch-подсчета выручки в дашборде
func (r *Repository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// List получает услуги с опциональным фильтром по активности
// Сортировка по дате создания (старые первыми), как в админке
func (r *Repository) List(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("created_at ASC")

	if filter.Active != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": *filter.Active})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows)
}

// CountActive подсчитывает активные услуги
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("services").
		Where(squirrel.Eq{"active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update частично обновляет услугу; nil поля не изменяются
func (r *Repository) Update(ctx context.Context, id string, update domain.ServiceUpdate) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("services").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.Name != nil {
		updateBuilder = updateBuilder.Set("name", *update.Name)
	}
	if update.Description != nil {
		updateBuilder = updateBuilder.Set("description", *update.Description)
	}
	if update.Price != nil {
		updateBuilder = updateBuilder.Set("price", *update.Price)
	}
	if update.Duration != nil {
		updateBuilder = updateBuilder.Set("duration", *update.Duration)
	}
	if update.Image != nil {
		updateBuilder = updateBuilder.Set("image", *update.Image)
	}
	if update.Active != nil {
		updateBuilder = updateBuilder.Set("active", *update.Active)
	}

	query, args, err := updateBuilder.
		Suffix("RETURNING " + strings.Join(serviceColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// Delete физически удаляет услугу
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
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
		return ErrServiceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.Duration,
		&svc.Image,
		&svc.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	svc.CreatedAt = createdAt.Time
	svc.UpdatedAt = updatedAt.Time

	return &svc, nil
}

func scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
