package jobs

import (
	"context"
	"time"

	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
	"rodacerta/frotagest/pkg/ws"
)

// ExpiryAlert is the payload pushed to consoles when the sweep finds
// expired tires sitting in stock.
type ExpiryAlert struct {
	Count   int             `json:"count"`
	SweptAt time.Time       `json:"swept_at"`
	Tires   []entities.Tire `json:"tires"`
}

// TireExpiryJob periodically sweeps the stock for tires past their
// expiry date. Expired tires are not mutated, only surfaced: scrapping
// stays a human decision.
type TireExpiryJob struct {
	tires   tire.Store
	hub     *ws.Hub
	metrics *metrics.MetricsRegistry
}

func NewTireExpiryJob(tires tire.Store, hub *ws.Hub, metricsReg *metrics.MetricsRegistry) *TireExpiryJob {
	return &TireExpiryJob{tires: tires, hub: hub, metrics: metricsReg}
}

// Run performs one sweep.
func (j *TireExpiryJob) Run(ctx context.Context) error {
	start := time.Now()

	stock, err := j.tires.TiresByStatus(ctx, entities.TireInStock)
	if err != nil {
		return err
	}

	var expired []entities.Tire
	for _, t := range stock {
		if t.ExpiresAt != nil && t.ExpiresAt.Before(start) {
			expired = append(expired, t)
		}
	}

	j.metrics.ExpiredStockTires.Set(float64(len(expired)))
	j.metrics.ExpiryJobDuration.Observe(time.Since(start).Seconds())

	if len(expired) > 0 {
		logging.Warn("Expired tires found in stock", "count", len(expired))
		if j.hub != nil {
			j.hub.BroadcastMessage(ws.MsgTypeStockAlert, &ExpiryAlert{
				Count:   len(expired),
				SweptAt: start,
				Tires:   expired,
			})
		}
	}
	return nil
}

// RunScheduled runs the expiry sweep on a fixed interval until the
// context is cancelled. The first sweep happens immediately.
func (j *TireExpiryJob) RunScheduled(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if err := j.Run(ctx); err != nil {
		logging.Error("Tire expiry sweep failed", "error", err.Error())
	}

	for {
		select {
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				logging.Error("Tire expiry sweep failed", "error", err.Error())
			}
		case <-ctx.Done():
			return
		}
	}
}
