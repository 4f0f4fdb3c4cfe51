package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder(t *testing.T) (*Seeder, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &Seeder{DB: db, AdminEmail: "admin@restaurant.local", AdminPasswordHash: "hash"}, mock
}

func TestSeeder_EmptyDatabase(t *testing.T) {
	s, mock := newSeeder(t)

	mock.ExpectExec(`INSERT INTO roles`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery(`SELECT id FROM users`).WithArgs("admin@restaurant.local").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO users`).WithArgs("admin@restaurant.local", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO restaurants`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectExec(`INSERT INTO dishes`).WithArgs("Nashville Hot Chicken", sqlmock.AnyArg(), 10.30, int64(10)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO dishes`).WithArgs("Chicken Nuggets", sqlmock.AnyArg(), 5.30, int64(10)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectQuery(`INSERT INTO restaurants`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.AdminID)
	assert.Equal(t, 2, res.RestaurantsAdded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_SkipsRestaurantsWhenPresent(t *testing.T) {
	s, mock := newSeeder(t)

	mock.ExpectExec(`INSERT INTO roles`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id FROM users`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.AdminID)
	assert.Zero(t, res.RestaurantsAdded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeeder_RollsBackOnFailure(t *testing.T) {
	s, mock := newSeeder(t)

	mock.ExpectExec(`INSERT INTO roles`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT id FROM users`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM restaurants`).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO restaurants`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := s.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KFC")
	assert.NoError(t, mock.ExpectationsWereMet())
}
