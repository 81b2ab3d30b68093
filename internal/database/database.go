// Package database はストアへの接続ハンドルを開閉します。
// 接続はプロセス起動時に一度だけ開き、シャットダウン時に明示的に閉じます。
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"daily-planner/internal/config"
)

// OpenMySQL はMySQL接続を初期化し、疎通を確認します。
func OpenMySQL(ctx context.Context, cfg config.MySQLConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Println("Successfully connected to MySQL database!")
	return db, nil
}

// createTaskTableSQL はタスクテーブルの定義です。
// seq は作成順を保つためだけの列で、外部には公開しません。
const createTaskTableSQL = `
	CREATE TABLE IF NOT EXISTS tasks (
		seq BIGINT AUTO_INCREMENT PRIMARY KEY,
		id CHAR(36) NOT NULL UNIQUE,
		date VARCHAR(10) NOT NULL,
		todo TEXT NOT NULL,
		start_time VARCHAR(16) NOT NULL DEFAULT '',
		end_time VARCHAR(16) NOT NULL DEFAULT '',
		priority VARCHAR(16) NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

// EnsureTaskSchema は tasks テーブルがなければ作成します。
func EnsureTaskSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTaskTableSQL); err != nil {
		return fmt.Errorf("failed to create tasks table: %w", err)
	}
	return nil
}
