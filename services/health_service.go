package services

import (
	"context"
	"runtime"
	"storebill_server/database"
	"time"

	"github.com/MonkyMars/gecho"
)

type serverHealthStatus struct {
	Uptime       float64   `json:"uptime"` // in seconds
	CurrentTime  time.Time `json:"current_time"`
	ServiceAlive bool      `json:"service_alive"`
	RamStats     *RamStats `json:"ram_stats"`
}

type RamStats struct {
	TotalMB     uint64 `json:"total_mb"`
	UsedMB      uint64 `json:"used_mb"`
	FreeMB      uint64 `json:"free_mb"`
	UsedPercent uint64 `json:"used_percent"`
}

type dependencyHealthStatus struct {
	Connected      bool      `json:"connected"`
	LastChecked    time.Time `json:"last_checked"`
	ResponseTimeMs int64     `json:"response_time_ms"`
}

type HealthService struct {
	logger       *gecho.Logger
	db           *database.DB
	tokenService *TokenService
	startedAt    time.Time
}

func NewHealthService(logger *gecho.Logger, db *database.DB, tokenService *TokenService) *HealthService {
	return &HealthService{
		logger:       logger,
		db:           db,
		tokenService: tokenService,
		startedAt:    time.Now(),
	}
}

func getRamStats() *RamStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	totalMB := m.Sys / 1024 / 1024
	usedMB := m.Alloc / 1024 / 1024
	freeMB := totalMB - usedMB
	usedPercent := uint64(0)
	if totalMB > 0 {
		usedPercent = (usedMB * 100) / totalMB
	}

	return &RamStats{
		TotalMB:     totalMB,
		UsedMB:      usedMB,
		FreeMB:      freeMB,
		UsedPercent: usedPercent,
	}
}

func (hs *HealthService) GetServerHealthStatus() serverHealthStatus {
	return serverHealthStatus{
		Uptime:       time.Since(hs.startedAt).Seconds(),
		CurrentTime:  time.Now(),
		ServiceAlive: true,
		RamStats:     getRamStats(),
	}
}

func (hs *HealthService) GetDatabaseHealthStatus(ctx context.Context) (dependencyHealthStatus, error) {
	start := time.Now()
	err := hs.db.PingContext(ctx)
	elapsed := time.Since(start).Milliseconds()

	status := dependencyHealthStatus{
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: elapsed,
	}
	if err != nil {
		hs.logger.Error("Database health check failed", gecho.Field("error", err))
	}
	return status, err
}

func (hs *HealthService) GetCacheHealthStatus(ctx context.Context) (dependencyHealthStatus, error) {
	start := time.Now()
	err := hs.tokenService.Ping(ctx)
	elapsed := time.Since(start).Milliseconds()

	status := dependencyHealthStatus{
		Connected:      err == nil,
		LastChecked:    time.Now(),
		ResponseTimeMs: elapsed,
	}
	if err != nil {
		hs.logger.Error("Cache health check failed", gecho.Field("error", err))
	}
	return status, err
}
