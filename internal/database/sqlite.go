package database

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

var (
	db   *sql.DB
	once sync.Once
)

func Init(dbPath string) error {
	var err error
	once.Do(func() {
		// 确保数据目录存在
		dir := filepath.Dir(dbPath)
		if dir != "" && dir != "." {
			if err = os.MkdirAll(dir, 0755); err != nil {
				return
			}
		}

		// 添加连接参数：WAL模式、忙等待超时
		dsn := dbPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return
		}
		if err = db.Ping(); err != nil {
			return
		}

		// 限制连接池大小，SQLite 单写多读
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		err = createTables()
	})
	return err
}

func GetDB() *sql.DB {
	return db
}

func createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS model_prices (
		id TEXT PRIMARY KEY,
		model TEXT UNIQUE NOT NULL,
		prompt_price REAL NOT NULL DEFAULT 0,
		completion_price REAL NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT 'live',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_model_prices_model ON model_prices(model);
	`
	_, err := db.Exec(schema)
	return err
}

func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}
