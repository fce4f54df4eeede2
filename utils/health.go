package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Pinger is anything the health monitor can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	DirectoryAPI bool      `json:"directoryApi"`
	Redis        *bool     `json:"redis,omitempty"` // nil when no Redis is configured.
	CheckedAt    time.Time `json:"checkedAt"`
}

// Healthy is true once checked and every configured dependency answered.
func (h HealthStatus) Healthy() bool {
	if h.CheckedAt.IsZero() || !h.DirectoryAPI {
		return false
	}
	return h.Redis == nil || *h.Redis
}

// HealthMonitor keeps the latest health snapshot in memory.
type HealthMonitor struct {
	directory Pinger
	redis     *redis.Client
	logger    *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(directory Pinger, redisClient *redis.Client, logger *zap.Logger) *HealthMonitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HealthMonitor{directory: directory, redis: redisClient, logger: logger}
}

// GetHealthStatus returns latest stored health snapshot.
func (m *HealthMonitor) GetHealthStatus() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check probes every dependency once and stores the result.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if err := m.directory.Ping(ctx); err != nil {
		m.logger.Warn("Directory API health check failed", zap.Error(err))
	} else {
		status.DirectoryAPI = true
	}
	if m.redis != nil {
		ok := m.redis.Ping(ctx).Err() == nil
		if !ok {
			m.logger.Warn("Redis health check failed")
		}
		status.Redis = &ok
	}

	m.mu.Lock()
	m.current = status
	m.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is done.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	go func() {
		m.Check(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
