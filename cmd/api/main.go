package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"impulseshield-backend/internal/config"
	"impulseshield-backend/internal/interfaces/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}

	app, deps, err := router.CreateApp(context.Background(), cfg)
	if err != nil {
		panic("app create: " + err.Error())
	}

	// Verify connections before printing startup lines
	if deps.DB != nil {
		sqlDB, err := deps.DB.DB()
		if err != nil {
			panic("Postgres: get DB: " + err.Error())
		}
		if err := sqlDB.Ping(); err != nil {
			panic("Postgres connection failed: " + err.Error())
		}
		fmt.Println("Postgres connected")
	}
	if deps.Rdb != nil {
		if err := deps.Rdb.Ping(context.Background()).Err(); err != nil {
			panic("Redis connection failed: " + err.Error())
		}
		fmt.Println("Redis connected")
	}
	fmt.Printf("Snapshot storage: %s\n", cfg.StorageBackend)
	fmt.Printf("Server running at http://localhost:%s\n", cfg.Port)
	fmt.Printf("Health check: http://localhost:%s/health/json\n", cfg.Port)
	fmt.Println("---")

	// Drain in-flight snapshot writes before exiting
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		deps.Ledger.Flush()
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
