// Package dao wraps the embedded sqlite database: connection setup, explicit
// migrations, fixture seeding and one function per CRUD operation per entity.
package dao

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fcurti/falegnameria-backend/pkg/config"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
)

var (
	once     sync.Once
	instance *gorm.DB
)

// GetDB returns the singleton database connection, opening the configured
// sqlite file on first use. WAL mode keeps concurrent readers working while a
// single writer holds the file.
func GetDB() *gorm.DB {
	once.Do(func() {
		if instance != nil {
			return
		}
		dbConfig := config.GetConfig()

		dsn := fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000", dbConfig.SQLite.Path)
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			panic(err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			panic(err)
		}
		// sqlite allows one writer at a time; a larger pool only queues on the
		// file lock.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(time.Hour)

		instance = db
		logutils.Log.Infof("sqlite init success: %s", dbConfig.SQLite.Path)
	})
	return instance
}

// SetDB overrides the singleton connection. Used by main after migrations and
// by tests with per-test in-memory databases.
func SetDB(db *gorm.DB) {
	instance = db
	once.Do(func() {})
}
