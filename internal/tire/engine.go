package tire

import (
	"rodacerta/frotagest/internal/layout"
	"rodacerta/frotagest/internal/models/entities"
)

// The planners below are pure: they validate a requested mutation against
// the current records and return updated copies, leaving every input
// untouched. Persisting a plan transactionally is the store's job, so a
// rejected plan trivially leaves stored state identical to before the call.

// AssignPlan is the computed outcome of mounting a tire at a position.
type AssignPlan struct {
	// Incoming is the stock tire, now bound to the vehicle position.
	Incoming entities.Tire
	// Outgoing is the displaced tire with its binding cleared and its
	// status set to the requested disposition. Nil when the slot was empty.
	Outgoing *entities.Tire
}

// SwapPlan is the computed outcome of exchanging two positions.
// Each side is the updated copy of the tire that now sits there,
// nil when that side ends up empty.
type SwapPlan struct {
	A *entities.Tire
	B *entities.Tire
}

// dispositions a tire may take when leaving a vehicle position.
var validDispositions = []entities.TireStatus{
	entities.TireInStock,
	entities.TireInRecap,
	entities.TireScrapped,
}

func validPosition(v *entities.Vehicle, position, field string) *Error {
	codes := layout.Positions(v.Type)
	if len(codes) == 0 {
		return validationErr(CodeNoLayout, field, "no layout defined for vehicle type %q", v.Type)
	}
	if !layout.HasPosition(v.Type, position) {
		return validationErr(CodeUnknownPosition, field, "position %s is not part of the %s layout", position, v.Type)
	}
	return nil
}

// PlanAssign validates and computes the mount of incoming at position,
// displacing outgoing (nil when the slot is empty) to disposition.
func PlanAssign(v *entities.Vehicle, position string, incoming *entities.Tire, outgoing *entities.Tire, disposition entities.TireStatus) (*AssignPlan, error) {
	if err := validPosition(v, position, "position"); err != nil {
		return nil, err
	}
	if incoming.Status != entities.TireInStock {
		return nil, validationErr(CodeTireNotInStock, "tire_id",
			"tire %s is not in stock (current status: %s)", incoming.Serial, incoming.Status)
	}

	plan := &AssignPlan{}

	if outgoing != nil {
		if disposition == "" {
			return nil, validationErr(CodeMissingDisposition, "outgoing_disposition",
				"position %s is occupied by tire %s; a disposition is required", position, outgoing.Serial)
		}
		if !dispositionAllowed(disposition) {
			return nil, validationErr(CodeBadDisposition, "outgoing_disposition",
				"disposition %q is not one of in_stock, in_recapping, scrapped", disposition)
		}
		if _, ok := EventFor(outgoing.Status, disposition); !ok {
			return nil, validationErr(CodeBadTransition, "outgoing_disposition",
				"tire %s cannot move from %s to %s", outgoing.Serial, outgoing.Status, disposition)
		}
		out := *outgoing
		out.Status = disposition
		out.VehicleID = nil
		out.PositionCode = nil
		plan.Outgoing = &out
	}

	in := *incoming
	in.Status = entities.TireInUse
	in.VehicleID = &v.ID
	pos := position
	in.PositionCode = &pos
	plan.Incoming = in

	return plan, nil
}

// PlanSwap validates and computes the exchange of the occupants of two
// distinct positions on the same vehicle. Statuses and recap counters are
// untouched; only position bindings move. One empty side makes this a move;
// both sides empty changes nothing but still validates the positions.
func PlanSwap(v *entities.Vehicle, positionA, positionB string, occupantA, occupantB *entities.Tire) (*SwapPlan, error) {
	if positionA == positionB {
		return nil, validationErr(CodeSamePosition, "position_b", "positions must differ")
	}
	if err := validPosition(v, positionA, "position_a"); err != nil {
		return nil, err
	}
	if err := validPosition(v, positionB, "position_b"); err != nil {
		return nil, err
	}

	plan := &SwapPlan{}
	if occupantA != nil {
		moved := *occupantA
		pos := positionB
		moved.PositionCode = &pos
		plan.B = &moved
	}
	if occupantB != nil {
		moved := *occupantB
		pos := positionA
		moved.PositionCode = &pos
		plan.A = &moved
	}
	return plan, nil
}

// PlanUnassign validates and computes the removal of the occupant of a
// position without mounting a replacement.
func PlanUnassign(v *entities.Vehicle, position string, occupant *entities.Tire, disposition entities.TireStatus) (*entities.Tire, error) {
	if err := validPosition(v, position, "position"); err != nil {
		return nil, err
	}
	if occupant == nil {
		return nil, validationErr(CodeUnknownPosition, "position", "position %s is already empty", position)
	}
	if disposition == "" {
		return nil, validationErr(CodeMissingDisposition, "disposition",
			"a disposition is required for tire %s", occupant.Serial)
	}
	if !dispositionAllowed(disposition) {
		return nil, validationErr(CodeBadDisposition, "disposition",
			"disposition %q is not one of in_stock, in_recapping, scrapped", disposition)
	}
	if _, ok := EventFor(occupant.Status, disposition); !ok {
		return nil, validationErr(CodeBadTransition, "disposition",
			"tire %s cannot move from %s to %s", occupant.Serial, occupant.Status, disposition)
	}

	out := *occupant
	out.Status = disposition
	out.VehicleID = nil
	out.PositionCode = nil
	return &out, nil
}

// PlanStatusChange validates and computes an off-vehicle status move:
// completing a recap (back to stock, counter bumped) or scrapping a tire
// from stock or from the recapper. Moves in or out of in_use belong to the
// assignment engine and are rejected here.
func PlanStatusChange(t *entities.Tire, to entities.TireStatus) (*entities.Tire, error) {
	if to == entities.TireInUse || t.Status == entities.TireInUse {
		return nil, validationErr(CodeBadTransition, "status",
			"moves in or out of in_use go through assignment, not a status change")
	}
	ev, ok := EventFor(t.Status, to)
	if !ok {
		return nil, validationErr(CodeBadTransition, "status",
			"tire %s cannot move from %s to %s", t.Serial, t.Status, to)
	}

	updated := *t
	updated.Status = to
	if ev == EventRecapDone {
		updated.RecapCount++
	}
	return &updated, nil
}

func dispositionAllowed(d entities.TireStatus) bool {
	for _, v := range validDispositions {
		if v == d {
			return true
		}
	}
	return false
}
