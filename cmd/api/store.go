package main

import (
	"context"
	"fmt"
	"time"

	"daily-planner/internal/config"
	"daily-planner/internal/database"
	"daily-planner/internal/repositories"
)

// closeFunc はストアの接続ハンドルを閉じます。
type closeFunc func(ctx context.Context) error

// openTaskRepository は設定されたドライバーで接続を開き、リポジトリに渡します。
func openTaskRepository(ctx context.Context, cfg *config.Config) (repositories.TaskRepository, closeFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := database.ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, err
		}
		repo := repositories.NewMongoTaskRepository(database.TaskCollection(client, cfg.Mongo))
		return repo, client.Disconnect, nil

	case config.DriverMySQL:
		db, err := database.OpenMySQL(ctx, cfg.MySQL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.EnsureTaskSchema(ctx, db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repositories.NewMySQLTaskRepository(db), func(context.Context) error { return db.Close() }, nil

	case config.DriverMemory:
		return repositories.NewMemoryTaskRepository(), func(context.Context) error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
