package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGooseUp(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUp
	gooseUp = fn
	t.Cleanup(func() { gooseUp = orig })
}

func stubOpenDB(t *testing.T, fn func(dsn string) (*sql.DB, error)) {
	t.Helper()
	orig := openDB
	openDB = fn
	t.Cleanup(func() { openDB = orig })
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, migrationsDir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_bookmarks.sql"}, names)
}

func TestUp_Success(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var gotDir string
	stubGooseUp(t, func(_ context.Context, got *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		assert.Same(t, db, got)
		gotDir = dir
		return nil
	})

	require.NoError(t, Up(context.Background(), db))
	assert.Equal(t, migrationsDir, gotDir)
}

func TestUp_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	stubGooseUp(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return boom
	})

	err = Up(context.Background(), db)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to apply migrations")
}

func TestMigrate_ClosesConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	stubOpenDB(t, func(dsn string) (*sql.DB, error) {
		assert.Equal(t, "postgres://example", dsn)
		return db, nil
	})
	stubGooseUp(t, func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return nil
	})

	require.NoError(t, Migrate(context.Background(), "postgres://example"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_OpenError(t *testing.T) {
	stubOpenDB(t, func(string) (*sql.DB, error) {
		return nil, errors.New("bad dsn")
	})

	err := Migrate(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}
