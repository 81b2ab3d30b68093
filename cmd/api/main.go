package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"

	"daily-planner/internal/config"
	"daily-planner/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: Failed to load config: %v", err)
	}

	ctx := context.Background()
	taskRepo, closeStore, err := openTaskRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Fatal: Failed to open %s store: %v", cfg.StoreDriver, err)
	}

	r := routes.SetupRouter(taskRepo, cfg.AllowOrigins)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("Server is running on %s (store: %s)", cfg.Addr, cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Fatal: HTTP server failed: %v", err)
		}
	}()

	// HTTPサーバーの処理中リクエストを待ってからストアを閉じる
	wait := gfshutdown.GracefulShutdown(ctx, cfg.ShutdownTimeout, map[string]gfshutdown.Operation{
		"planner": func(ctx context.Context) error {
			log.Println("Shutting down HTTP server...")
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("HTTP server shutdown error: %v", err)
			}
			log.Println("Closing store...")
			return closeStore(ctx)
		},
	})

	exitCode := <-wait
	log.Printf("Server exited with code: %d", exitCode)
	os.Exit(exitCode)
}
