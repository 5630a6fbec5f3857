// Package testutil opens GORM in dry-run mode so access-layer tests can
// assert on generated SQL without a database.
package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Recorder is a GORM logger that keeps every traced statement.
type Recorder struct {
	mu   sync.Mutex
	SQLs []string
}

func (r *Recorder) LogMode(logger.LogLevel) logger.Interface { return r }

func (r *Recorder) Info(context.Context, string, ...interface{}) {}

func (r *Recorder) Warn(context.Context, string, ...interface{}) {}

func (r *Recorder) Error(context.Context, string, ...interface{}) {}

func (r *Recorder) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	r.mu.Lock()
	r.SQLs = append(r.SQLs, sql)
	r.mu.Unlock()
}

func (r *Recorder) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.SQLs...)
}

// DryRunDB returns a MySQL-dialect DB that renders SQL but never connects.
func DryRunDB(t *testing.T) (*gorm.DB, *Recorder) {
	t.Helper()
	rec := &Recorder{}
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "vidtube:vidtube@tcp(127.0.0.1:3306)/vidtube?parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 rec,
	})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db, rec
}
