package health

import (
	"context"
	"runtime"
	"time"

	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

// DBPinger is optional for the health check. If nil, the database is
// reported as disconnected.
type DBPinger interface {
	Ping() error
}

type RuntimeInfo struct {
	UptimeSeconds int64  `json:"uptimeSeconds"`
	Goroutines    int    `json:"goroutines"`
	Platform      string `json:"platform"`
	GoVersion     string `json:"goVersion"`
}

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

type CollectResult struct {
	Status       string               `json:"status"`
	Storage      string               `json:"storage"`
	Runtime      RuntimeInfo          `json:"runtime"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

// Collect probes the configured persistence backends and reports runtime
// info. Storage names the backend the ledger snapshot is written to.
func Collect(ctx context.Context, storage string, rdb *redis.Client, db DBPinger) CollectResult {
	result := CollectResult{
		Storage:      storage,
		Dependencies: make(map[string]DepStatus),
	}

	dbStatus := "disconnected"
	var dbPingMs *int64
	if db != nil {
		start := time.Now()
		if err := db.Ping(); err == nil {
			ms := time.Since(start).Milliseconds()
			dbPingMs = &ms
			dbStatus = "connected"
		} else {
			dbStatus = "error"
		}
	}
	result.Dependencies["database"] = DepStatus{Status: dbStatus, PingMs: dbPingMs}

	redisStatus := "disconnected"
	var redisPingMs *int64
	if rdb != nil {
		start := time.Now()
		if err := rdb.Ping(ctx).Err(); err == nil {
			ms := time.Since(start).Milliseconds()
			redisPingMs = &ms
			redisStatus = "connected"
		} else {
			redisStatus = "error"
		}
	}
	result.Dependencies["redis"] = DepStatus{Status: redisStatus, PingMs: redisPingMs}

	result.Runtime = RuntimeInfo{
		UptimeSeconds: int64(time.Since(startTime).Seconds()),
		Goroutines:    runtime.NumGoroutine(),
		Platform:      runtime.GOOS,
		GoVersion:     runtime.Version(),
	}

	// Memory storage carries no external dependency, so it is always ok
	result.Status = "ok"
	if storage == "redis" && redisStatus != "connected" {
		result.Status = "issue"
	}
	if storage == "database" && dbStatus != "connected" {
		result.Status = "issue"
	}
	return result
}
