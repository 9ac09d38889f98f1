package database_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"DOCSHELF_BACK-END/internal/config"
	"DOCSHELF_BACK-END/internal/database"
	"DOCSHELF_BACK-END/internal/database/dbtest"
	"DOCSHELF_BACK-END/internal/logger"
	"DOCSHELF_BACK-END/internal/models"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		raw    string
		driver string
		dsn    string
	}{
		{"sqlite:///./database.db", database.DriverSQLite, "./database.db"},
		{"sqlite:////var/lib/docs.db", database.DriverSQLite, "/var/lib/docs.db"},
		{"sqlite://:memory:", database.DriverSQLite, ":memory:"},
		{":memory:", database.DriverSQLite, ":memory:"},
		{"file:x?mode=memory", database.DriverSQLite, "file:x?mode=memory"},
		{"postgres://u:p@db:5432/docs", database.DriverPostgres, "postgres://u:p@db:5432/docs"},
		{"postgresql://u:p@db/docs?sslmode=require", database.DriverPostgres, "postgresql://u:p@db/docs?sslmode=require"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			driver, dsn, err := database.ParseURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
			assert.Equal(t, tt.dsn, dsn)
		})
	}
}

func TestParseURLRejectsUnknownScheme(t *testing.T) {
	_, _, err := database.ParseURL("mysql://root:hunter2@db/docs")
	require.ErrorIs(t, err, database.ErrUnsupportedURL)
	assert.NotContains(t, err.Error(), "hunter2")
}

func TestOpenPrivateMemoryDatabase(t *testing.T) {
	db, err := database.Open(context.Background(), config.DatabaseConfig{URL: "sqlite://:memory:"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, database.DriverSQLite, db.Driver)
	require.NoError(t, db.Migrate(context.Background()))
	require.NoError(t, db.Ping(context.Background()))
	assert.True(t, db.Gorm.Migrator().HasTable(&models.Document{}))
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Migrate(context.Background()))
	for _, table := range []string{"users", "categories", "subcategories", "documents"} {
		assert.True(t, db.Gorm.Migrator().HasTable(table), table)
	}
}

func TestUniqueEmailIsTranslated(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, db.Gorm.Create(&models.User{Email: "a@x.io", HashedPassword: "h"}).Error)
	err := db.Gorm.Create(&models.User{Email: "a@x.io", HashedPassword: "h"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func openLogged(t *testing.T, debug bool) (*database.Database, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logger.New(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	db, err := database.Open(context.Background(), config.DatabaseConfig{URL: "sqlite://:memory:", Debug: debug}, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	buf.Reset()
	return db, &buf
}

func TestSQLTraceOmitsBoundValues(t *testing.T) {
	const hash = "$2a$10$abcdefghijklmnopqrstuvCDEFGHIJKLMNOPQRSTUVWXYZ01234"
	db, buf := openLogged(t, true)

	require.NoError(t, db.Gorm.Create(&models.User{Email: "a@x.io", HashedPassword: hash}).Error)

	out := buf.String()
	assert.Contains(t, out, "INSERT INTO")
	assert.NotContains(t, out, hash)
	assert.NotContains(t, out, "a@x.io")
}

func TestFailedQueryIsLoggedAsError(t *testing.T) {
	const hash = "$2a$10$zyxwvutsrqponmlkjihgfeDCBAZYXWVUTSRQPONMLKJIHGFE98765"
	db, buf := openLogged(t, false)

	require.NoError(t, db.Gorm.Create(&models.User{Email: "a@x.io", HashedPassword: hash}).Error)
	assert.Empty(t, buf.String(), "successful queries are not traced by default")

	err := db.Gorm.Create(&models.User{Email: "a@x.io", HashedPassword: hash}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, "SQL query failed")
	assert.NotContains(t, out, hash)
}
