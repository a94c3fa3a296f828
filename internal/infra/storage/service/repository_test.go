package service

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func serviceRow(id string, price interface{}) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "description", "price", "duration", "image", "active",
		"created_at", "updated_at",
	}).AddRow(id, "Corte Clássico", "", price, "45 min", "", true, now, now)
}

func TestGetByID_ScansNumericPrice(t *testing.T) {
	repo, mock := newMock(t)

	// NUMERIC приходит от драйвера десятичной строкой
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs("svc-1").
		WillReturnRows(serviceRow("svc-1", []byte("59.90")))

	svc, err := repo.GetByID(context.Background(), "svc-1")
	require.NoError(t, err)
	assert.Equal(t, 59.90, svc.Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByIDs_EmptySetSkipsQuery(t *testing.T) {
	repo, mock := newMock(t)

	services, err := repo.GetByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountActive(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM services WHERE active = $1`)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM services`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
