package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weiwangfds/notestore/config"
)

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"文件库", "notes.db", "notes.db?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"},
		{"已有参数", "notes.db?cache=shared", "notes.db?cache=shared&_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"},
		{"内存库", ":memory:", ":memory:"},
		{"共享内存库", "file::memory:?cache=shared", "file::memory:?cache=shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestInit(t *testing.T) {
	t.Run("带查询参数的文件库", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "notes.db") + "?cache=shared"
		db, err := Init(config.StorageConfig{Driver: config.DriverSQLite, DSN: dsn})
		require.NoError(t, err)

		var mode string
		require.NoError(t, db.Raw("PRAGMA journal_mode").Scan(&mode).Error)
		assert.Equal(t, "wal", mode)
		assert.True(t, db.Migrator().HasTable(&NoteRecord{}))
	})

	t.Run("不支持的驱动", func(t *testing.T) {
		_, err := Init(config.StorageConfig{Driver: config.DriverFS})
		assert.Error(t, err)
	})
}
