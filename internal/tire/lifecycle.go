// Package tire implements the tire lifecycle and the vehicle
// position-assignment engine: stock → in-use → recap/scrap transitions,
// position swaps, and the layout-driven validation behind both.
package tire

import (
	"context"

	"github.com/looplab/fsm"

	"rodacerta/frotagest/internal/models/entities"
)

// Lifecycle event names. recap_done is the only transition that
// increments the recap counter (recapping completed, tire back in stock).
const (
	EventMount          = "mount"
	EventDismountStock  = "dismount_to_stock"
	EventDismountRecap  = "dismount_to_recap"
	EventDismountScrap  = "dismount_to_scrap"
	EventRecapDone      = "recap_done"
	EventScrapFromStock = "scrap_from_stock"
	EventScrapFromRecap = "scrap_from_recap"
)

var lifecycleEvents = fsm.Events{
	{Name: EventMount, Src: []string{string(entities.TireInStock)}, Dst: string(entities.TireInUse)},
	{Name: EventDismountStock, Src: []string{string(entities.TireInUse)}, Dst: string(entities.TireInStock)},
	{Name: EventDismountRecap, Src: []string{string(entities.TireInUse)}, Dst: string(entities.TireInRecap)},
	{Name: EventDismountScrap, Src: []string{string(entities.TireInUse)}, Dst: string(entities.TireScrapped)},
	{Name: EventRecapDone, Src: []string{string(entities.TireInRecap)}, Dst: string(entities.TireInStock)},
	{Name: EventScrapFromStock, Src: []string{string(entities.TireInStock)}, Dst: string(entities.TireScrapped)},
	{Name: EventScrapFromRecap, Src: []string{string(entities.TireInRecap)}, Dst: string(entities.TireScrapped)},
}

func newMachine(current entities.TireStatus) *fsm.FSM {
	return fsm.NewFSM(string(current), lifecycleEvents, fsm.Callbacks{})
}

// EventFor returns the lifecycle event that moves a tire between the two
// statuses, or false when no legal transition exists.
func EventFor(from, to entities.TireStatus) (string, bool) {
	m := newMachine(from)
	for _, e := range lifecycleEvents {
		if e.Dst != string(to) || !m.Can(e.Name) {
			continue
		}
		return e.Name, true
	}
	return "", false
}

// CanTransition reports whether from → to is a legal lifecycle move.
func CanTransition(from, to entities.TireStatus) bool {
	_, ok := EventFor(from, to)
	return ok
}

// Transition drives the machine from → to, returning the event applied.
func Transition(ctx context.Context, from, to entities.TireStatus) (string, error) {
	ev, ok := EventFor(from, to)
	if !ok {
		return "", validationErr(CodeBadTransition, "status", "tire cannot move from %s to %s", from, to)
	}
	m := newMachine(from)
	if err := m.Event(ctx, ev); err != nil {
		return "", validationErr(CodeBadTransition, "status", "tire cannot move from %s to %s", from, to)
	}
	return ev, nil
}
