package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/metrics"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

type stubTireStore struct {
	tire.Store
	tires []entities.Tire
}

func (s *stubTireStore) TiresByStatus(_ context.Context, statuses ...entities.TireStatus) ([]entities.Tire, error) {
	var out []entities.Tire
	for _, t := range s.tires {
		for _, st := range statuses {
			if t.Status == st {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

var jobMetrics = metrics.NewMetricsRegistry()

func TestExpirySweepFindsExpiredStock(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	store := &stubTireStore{tires: []entities.Tire{
		{ID: "t1", Serial: "FG-1", Status: entities.TireInStock, ExpiresAt: &past},
		{ID: "t2", Serial: "FG-2", Status: entities.TireInStock, ExpiresAt: &future},
		{ID: "t3", Serial: "FG-3", Status: entities.TireInStock},
		{ID: "t4", Serial: "FG-4", Status: entities.TireInUse, ExpiresAt: &past},
	}}

	job := NewTireExpiryJob(store, nil, jobMetrics)
	require.NoError(t, job.Run(context.Background()))
}

func TestExpirySweepScheduledStopsOnCancel(t *testing.T) {
	store := &stubTireStore{}
	job := NewTireExpiryJob(store, nil, jobMetrics)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.RunScheduled(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled sweep did not stop on context cancel")
	}
	assert.Equal(t, 0, len(store.tires))
}
