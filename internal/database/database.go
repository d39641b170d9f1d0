package database

import (
	"fmt"
	"strings"

	"github.com/weiwangfds/notestore/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init 初始化数据库连接
func Init(cfg config.StorageConfig) (*gorm.DB, error) {
	if cfg.Driver != config.DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	return Open(sqlite.Open(sqliteDSN(cfg.DSN)))
}

// sqliteDSN 为文件库追加 WAL 等连接参数，保留已有的查询参数
// 内存库不需要 WAL
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, ":memory:") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
}

// Open 使用给定的 dialector 打开数据库并迁移表结构
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// 对于SQLite，限制并发连接数以避免锁定问题
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&NoteRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto migrate: %w", err)
	}

	return db, nil
}
