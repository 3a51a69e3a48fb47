package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"photo-wall-server/internal/config"
	"photo-wall-server/internal/db"
	"photo-wall-server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int64

// SetupDB initializes a unique in-memory SQLite database for testing,
// sets the global db.DB, and performs auto-migration.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:pws_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if prevDB != nil && db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(&model.User{}, &model.Photo{}, &model.Like{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}

// SetupConfig installs a test configuration snapshot with an isolated
// upload directory and a fixed session secret.
func SetupConfig(t *testing.T) config.Config {
	t.Helper()

	cfg := config.Config{
		Server: config.ServerConfig{Port: "8080", Mode: "debug"},
		Session: config.SessionConfig{
			Secret:          "test-session-secret",
			ExpirationHours: 24,
		},
		Upload: config.UploadConfig{
			Path:              t.TempDir(),
			URLPrefix:         "/photos/",
			MaxUploadSizeMB:   10,
			AllowedExtensions: "png,jpg,jpeg,gif,mp4",
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
	}
	config.SetForTest(cfg)
	return cfg
}
