package jobs

import (
	"context"
	"time"

	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/tire"
	"rodacerta/frotagest/pkg/ws"
)

// InitializeJobs initializes and starts all background jobs
func InitializeJobs(
	ctx context.Context,
	tires tire.Store,
	hub *ws.Hub,
	metricsReg *metrics.MetricsRegistry,
	expiryInterval time.Duration,
) *TireExpiryJob {
	expiryJob := NewTireExpiryJob(tires, hub, metricsReg)

	// Start scheduled sweep in background
	go expiryJob.RunScheduled(ctx, expiryInterval)

	return expiryJob
}
