package tire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/models/entities"
)

func TestCanTransitionCoversExactlyTheLegalMoves(t *testing.T) {
	legal := map[entities.TireStatus][]entities.TireStatus{
		entities.TireInStock:  {entities.TireInUse, entities.TireScrapped},
		entities.TireInUse:    {entities.TireInStock, entities.TireInRecap, entities.TireScrapped},
		entities.TireInRecap:  {entities.TireInStock, entities.TireScrapped},
		entities.TireScrapped: {},
	}

	for _, from := range entities.AllTireStatuses {
		for _, to := range entities.AllTireStatuses {
			want := false
			for _, l := range legal[from] {
				if l == to {
					want = true
				}
			}
			assert.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestScrappedIsTerminal(t *testing.T) {
	for _, to := range entities.AllTireStatuses {
		assert.False(t, CanTransition(entities.TireScrapped, to), "scrapped -> %s", to)
	}
}

func TestEventForRecapCompletion(t *testing.T) {
	ev, ok := EventFor(entities.TireInRecap, entities.TireInStock)
	require.True(t, ok)
	assert.Equal(t, EventRecapDone, ev)
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	_, err := Transition(context.Background(), entities.TireScrapped, entities.TireInStock)
	require.Error(t, err)

	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, KindValidation, domainErr.Kind)
	assert.Equal(t, CodeBadTransition, domainErr.Code)
}

func TestTransitionAppliesLegalMove(t *testing.T) {
	ev, err := Transition(context.Background(), entities.TireInStock, entities.TireInUse)
	require.NoError(t, err)
	assert.Equal(t, EventMount, ev)
}
