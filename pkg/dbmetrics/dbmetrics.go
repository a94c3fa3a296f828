package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/primobarber/PB-BookingService/pkg/metrics"
)

// DBExecutor минимальный интерфейс выполнения запросов
// Реализуется *DB и *Tx, используется репозиториями
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor интерфейс исполнителя внутри транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}

const poolStatsInterval = 15 * time.Second

// DB обертка над *sql.DB с опциональным сбором метрик
// При collector == nil работает прозрачно, без инструментирования
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
}

// Wrap оборачивает *sql.DB; при наличии коллектора запускает
// периодическую публикацию статистики пула (останавливается по stopCh)
func Wrap(db *sql.DB, collector *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, collector: collector}

	if collector != nil {
		go func() {
			ticker := time.NewTicker(poolStatsInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					collector.SetDBPoolStats(db.Stats())
				case <-stopCh:
					return
				}
			}
		}()
	}

	return wrapped
}

func (d *DB) observe(operation string, start time.Time) {
	if d.collector != nil {
		d.collector.ObserveDBQuery(operation, time.Since(start))
	}
}

// ExecContext выполняет запрос без возврата строк
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

// QueryContext выполняет запрос с возвратом строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос с возвратом одной строки
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// Tx обертка над *sql.Tx с теми же метриками, что и у родительской DB
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

// ExecContext выполняет запрос в транзакции
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

// QueryContext выполняет запрос в транзакции
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext выполняет запрос в транзакции
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

// Commit фиксирует транзакцию
func (t *Tx) Commit() error { return t.tx.Commit() }

// Rollback откатывает транзакцию
func (t *Tx) Rollback() error { return t.tx.Rollback() }

type ctxKey struct{}

// WithExecutor кладет транзакционный исполнитель в контекст
// Репозитории получают его через GetExecutor и автоматически
// работают внутри транзакции
func WithExecutor(ctx context.Context, exec TxExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, exec)
}

// GetExecutor возвращает исполнитель из контекста или fallback
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(ctxKey{}).(TxExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(ctxKey{}).(TxExecutor)
	return ok
}
