// Package config はサーバーの設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// ストアのドライバー名
const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config はサーバー全体の設定です。
type Config struct {
	Addr            string
	StoreDriver     string
	Mongo           MongoConfig
	MySQL           MySQLConfig
	AllowOrigins    []string
	ShutdownTimeout time.Duration
}

// MongoConfig はMongoDBの接続設定です。
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// MySQLConfig はMySQLの接続設定です。
type MySQLConfig struct {
	User string
	Pass string
	Host string
	Port string
	Name string
}

// DSN はMySQL接続文字列 (DSN) を構築します。
// 例: user:pass@tcp(db:3306)/dbname?parseTime=true
func (c MySQLConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Pass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, c.Port)
	cfg.DBName = c.Name
	cfg.ParseTime = true
	return cfg.FormatDSN()
}

// Load は .env を読み込んだ上で環境変数から設定を構築します。
// .env が存在しなくてもエラーにはしません。
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}
	return FromEnv()
}

// FromEnv は現在の環境変数のみから設定を構築します。
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:        getEnv("PLANNER_ADDR", ":5002"),
		StoreDriver: getEnv("STORE_DRIVER", DriverMongo),
		Mongo: MongoConfig{
			URI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   getEnv("MONGO_DATABASE", "plan"),
			Collection: getEnv("MONGO_COLLECTION", "tasks"),
		},
		MySQL: MySQLConfig{
			User: os.Getenv("DB_USER"),
			Pass: os.Getenv("DB_PASS"),
			Host: getEnv("DB_HOST", "127.0.0.1"),
			Port: getEnv("DB_PORT", "3306"),
			Name: os.Getenv("DB_NAME"),
		},
		AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
	}

	switch cfg.StoreDriver {
	case DriverMongo, DriverMySQL, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want mongo, mysql or memory)", cfg.StoreDriver)
	}

	timeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
