package storage

import (
	"context"
	"errors"
	"testing"

	"ifood/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestApplyMigrations_RunsPending(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT migration_name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"migration_name"}).AddRow("0001_init.sql"))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_menus_restaurant_id").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("0002_indexes.sql").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, ApplyMigrations(context.Background(), db, logger.Discard()))
}

func TestApplyMigrations_RollsBackOnFailure(t *testing.T) {
	db, mock := setupTestDB(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT migration_name FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"migration_name"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS restaurants").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err := ApplyMigrations(context.Background(), db, nil)
	assert.ErrorContains(t, err, "0001_init.sql")
}
