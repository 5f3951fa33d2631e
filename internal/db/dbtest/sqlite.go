// Package dbtest opens throwaway in-memory SQLite stores for tests.
package dbtest

import (
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/idanaslund/final-project-backend/internal/db"
)

var seq atomic.Int64

// Open returns a migrated in-memory database private to t, closed on cleanup.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := "file:" + name + "_" + strconv.FormatInt(seq.Add(1), 10) + "?mode=memory&cache=shared"

	opts := db.Options()
	// a held transaction would block statement preparation on the single connection
	opts.PrepareStmt = false

	gdb, err := gorm.Open(sqlite.Open(dsn), opts)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// sqlite serialises writers
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}
