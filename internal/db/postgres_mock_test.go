package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func withMockStore(t *testing.T, fn func(*PostgresStore, sqlmock.Sqlmock)) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	store := &PostgresStore{db: db}
	fn(store, mock)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestPostgresStore_Mocked(t *testing.T) {
	t.Run("SetEntry Success", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectExec("INSERT INTO entries").
				WithArgs("default", "token", "abc").
				WillReturnResult(sqlmock.NewResult(1, 1))

			assert.NoError(t, store.SetEntry("default", "token", "abc"))
		})
	})

	t.Run("SetEntry Error", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectExec("INSERT INTO entries").
				WithArgs("default", "token", "abc").
				WillReturnError(errors.New("insert error"))

			assert.Error(t, store.SetEntry("default", "token", "abc"))
		})
	})

	t.Run("GetEntry Found", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			rows := sqlmock.NewRows([]string{"value"}).AddRow("abc")
			mock.ExpectQuery("SELECT value FROM entries").
				WithArgs("default", "token").
				WillReturnRows(rows)

			val, err := store.GetEntry("default", "token")
			assert.NoError(t, err)
			assert.Equal(t, "abc", val)
		})
	})

	t.Run("GetEntry Missing", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectQuery("SELECT value FROM entries").
				WithArgs("default", "token").
				WillReturnRows(sqlmock.NewRows([]string{"value"}))

			val, err := store.GetEntry("default", "token")
			assert.NoError(t, err)
			assert.Equal(t, "", val)
		})
	})

	t.Run("DeleteEntry", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectExec("DELETE FROM entries").
				WithArgs("default", "user").
				WillReturnResult(sqlmock.NewResult(0, 1))

			assert.NoError(t, store.DeleteEntry("default", "user"))
		})
	})

	t.Run("Migrate", func(t *testing.T) {
		withMockStore(t, func(store *PostgresStore, mock sqlmock.Sqlmock) {
			mock.ExpectExec("CREATE TABLE IF NOT EXISTS entries").WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_entries_namespace").WillReturnResult(sqlmock.NewResult(0, 0))

			assert.NoError(t, store.migrate())
		})
	})
}
