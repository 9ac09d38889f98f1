// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"DOCSHELF_BACK-END/internal/config"
	"DOCSHELF_BACK-END/internal/database"
	"DOCSHELF_BACK-END/internal/logger"
)

// Open returns a migrated sqlite database private to t, closed on cleanup.
func Open(t testing.TB) *database.Database {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.DatabaseConfig{URL: "file:" + name + "?mode=memory&cache=shared"}

	db, err := database.Open(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return db
}
