package tire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/models/entities"
)

func deliveryVan() *entities.Vehicle {
	return &entities.Vehicle{ID: "veh-1", Plate: "ABC1D23", Type: entities.VehicleDelivery}
}

func stockTire(id, serial string) *entities.Tire {
	return &entities.Tire{ID: id, Serial: serial, Status: entities.TireInStock, Version: 1}
}

func mountedTire(id, serial, vehicleID, position string) *entities.Tire {
	return &entities.Tire{
		ID:           id,
		Serial:       serial,
		Status:       entities.TireInUse,
		VehicleID:    &vehicleID,
		PositionCode: &position,
		Version:      1,
	}
}

func TestPlanAssignToEmptySlot(t *testing.T) {
	v := deliveryVan()
	incoming := stockTire("t1", "S-001")

	plan, err := PlanAssign(v, "1E", incoming, nil, "")
	require.NoError(t, err)
	require.Nil(t, plan.Outgoing)

	assert.Equal(t, entities.TireInUse, plan.Incoming.Status)
	require.NotNil(t, plan.Incoming.VehicleID)
	assert.Equal(t, "veh-1", *plan.Incoming.VehicleID)
	require.NotNil(t, plan.Incoming.PositionCode)
	assert.Equal(t, "1E", *plan.Incoming.PositionCode)

	// inputs untouched
	assert.Equal(t, entities.TireInStock, incoming.Status)
	assert.Nil(t, incoming.VehicleID)
}

func TestPlanAssignDisplacesOutgoing(t *testing.T) {
	v := deliveryVan()
	outgoing := mountedTire("t1", "S-001", v.ID, "1E")
	incoming := stockTire("t2", "S-002")

	plan, err := PlanAssign(v, "1E", incoming, outgoing, entities.TireInRecap)
	require.NoError(t, err)
	require.NotNil(t, plan.Outgoing)

	assert.Equal(t, entities.TireInRecap, plan.Outgoing.Status)
	assert.Nil(t, plan.Outgoing.VehicleID)
	assert.Nil(t, plan.Outgoing.PositionCode)
	assert.Equal(t, entities.TireInUse, plan.Incoming.Status)
	assert.Equal(t, "1E", *plan.Incoming.PositionCode)

	// disposition never touches the recap counter on its own
	assert.Equal(t, outgoing.RecapCount, plan.Outgoing.RecapCount)

	// inputs untouched
	assert.Equal(t, entities.TireInUse, outgoing.Status)
	require.NotNil(t, outgoing.PositionCode)
	assert.Equal(t, "1E", *outgoing.PositionCode)
}

func TestPlanAssignRejectsTireNotInStock(t *testing.T) {
	v := deliveryVan()
	elsewhere := mountedTire("t3", "S-003", "veh-9", "2D")

	for _, status := range []entities.TireStatus{entities.TireInUse, entities.TireInRecap, entities.TireScrapped} {
		incoming := *elsewhere
		incoming.Status = status
		if status != entities.TireInUse {
			incoming.VehicleID = nil
			incoming.PositionCode = nil
		}

		_, err := PlanAssign(v, "1E", &incoming, nil, "")
		require.Error(t, err, "status %s", status)

		var domainErr *Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, KindValidation, domainErr.Kind)
		assert.Equal(t, CodeTireNotInStock, domainErr.Code)
		assert.Contains(t, domainErr.Message, string(status))
		assert.Contains(t, domainErr.Message, "S-003")
	}
}

func TestPlanAssignRequiresDispositionWhenOccupied(t *testing.T) {
	v := deliveryVan()
	outgoing := mountedTire("t1", "S-001", v.ID, "1E")
	incoming := stockTire("t2", "S-002")

	_, err := PlanAssign(v, "1E", incoming, outgoing, "")
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeMissingDisposition, domainErr.Code)

	_, err = PlanAssign(v, "1E", incoming, outgoing, entities.TireInUse)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeBadDisposition, domainErr.Code)
}

func TestPlanAssignRejectsUnknownPosition(t *testing.T) {
	v := deliveryVan()
	incoming := stockTire("t1", "S-001")

	_, err := PlanAssign(v, "3DI", incoming, nil, "")
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, KindValidation, domainErr.Kind)
	assert.Equal(t, CodeUnknownPosition, domainErr.Code)
	assert.Equal(t, "position", domainErr.Field)
}

func TestPlanAssignRejectsUnknownVehicleType(t *testing.T) {
	v := &entities.Vehicle{ID: "veh-x", Type: "hovercraft"}
	incoming := stockTire("t1", "S-001")

	_, err := PlanAssign(v, "1E", incoming, nil, "")
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeNoLayout, domainErr.Code)
}

func TestPlanSwapExchangesOccupants(t *testing.T) {
	v := deliveryVan()
	a := mountedTire("t1", "S-001", v.ID, "1E")
	b := mountedTire("t2", "S-002", v.ID, "1D")

	plan, err := PlanSwap(v, "1E", "1D", a, b)
	require.NoError(t, err)
	require.NotNil(t, plan.A)
	require.NotNil(t, plan.B)

	assert.Equal(t, "t2", plan.A.ID)
	assert.Equal(t, "1E", *plan.A.PositionCode)
	assert.Equal(t, "t1", plan.B.ID)
	assert.Equal(t, "1D", *plan.B.PositionCode)

	// status untouched on both sides
	assert.Equal(t, entities.TireInUse, plan.A.Status)
	assert.Equal(t, entities.TireInUse, plan.B.Status)
}

func TestPlanSwapIntoEmptySlotIsAMove(t *testing.T) {
	v := deliveryVan()
	a := mountedTire("t1", "S-001", v.ID, "1E")

	plan, err := PlanSwap(v, "1E", "1D", a, nil)
	require.NoError(t, err)
	require.Nil(t, plan.A, "origin slot becomes empty")
	require.NotNil(t, plan.B)
	assert.Equal(t, "t1", plan.B.ID)
	assert.Equal(t, "1D", *plan.B.PositionCode)
}

func TestPlanSwapIsAnInvolution(t *testing.T) {
	v := &entities.Vehicle{ID: "veh-2", Type: entities.VehicleTruck}
	codes := []string{"1E", "1D", "2EE", "2EI", "2DI", "2DE", "3EE", "3EI", "3DI", "3DE", "E"}

	// occupy roughly half the slots
	occupants := map[string]*entities.Tire{}
	for i, code := range codes {
		if i%2 == 0 {
			occupants[code] = mountedTire("t"+code, "S-"+code, v.ID, code)
		}
	}

	apply := func(occ map[string]*entities.Tire, posA, posB string) map[string]*entities.Tire {
		plan, err := PlanSwap(v, posA, posB, occ[posA], occ[posB])
		require.NoError(t, err)
		next := map[string]*entities.Tire{}
		for k, t := range occ {
			if k != posA && k != posB {
				next[k] = t
			}
		}
		if plan.A != nil {
			next[posA] = plan.A
		}
		if plan.B != nil {
			next[posB] = plan.B
		}
		return next
	}

	for i := range codes {
		for j := range codes {
			if i == j {
				continue
			}
			once := apply(occupants, codes[i], codes[j])
			twice := apply(once, codes[i], codes[j])

			require.Len(t, twice, len(occupants))
			for code, orig := range occupants {
				got, ok := twice[code]
				require.True(t, ok, "slot %s lost its occupant", code)
				assert.Equal(t, orig.ID, got.ID, "swap(%s,%s) twice", codes[i], codes[j])
				assert.Equal(t, code, *got.PositionCode)
			}
		}
	}
}

func TestPlanSwapRejectsIdenticalPositions(t *testing.T) {
	v := deliveryVan()
	a := mountedTire("t1", "S-001", v.ID, "1E")

	_, err := PlanSwap(v, "1E", "1E", a, a)
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeSamePosition, domainErr.Code)
	assert.Equal(t, "positions must differ", domainErr.Message)
}

func TestPlanSwapRejectsPositionOutsideLayout(t *testing.T) {
	v := deliveryVan()
	a := mountedTire("t1", "S-001", v.ID, "1E")

	_, err := PlanSwap(v, "1E", "9X", a, nil)
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeUnknownPosition, domainErr.Code)
	assert.Equal(t, "position_b", domainErr.Field)
}

func TestPlanUnassignClearsBinding(t *testing.T) {
	v := deliveryVan()
	occ := mountedTire("t1", "S-001", v.ID, "2E")

	out, err := PlanUnassign(v, "2E", occ, entities.TireScrapped)
	require.NoError(t, err)
	assert.Equal(t, entities.TireScrapped, out.Status)
	assert.Nil(t, out.VehicleID)
	assert.Nil(t, out.PositionCode)
	assert.Equal(t, occ.RecapCount, out.RecapCount)
}

func TestPlanUnassignEmptySlot(t *testing.T) {
	v := deliveryVan()
	_, err := PlanUnassign(v, "2E", nil, entities.TireInStock)
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, KindValidation, domainErr.Kind)
}

func TestPlanStatusChangeRecapCycleCountsOnce(t *testing.T) {
	worn := &entities.Tire{ID: "t1", Serial: "S-001", Status: entities.TireInRecap, RecapCount: 0}

	back, err := PlanStatusChange(worn, entities.TireInStock)
	require.NoError(t, err)
	assert.Equal(t, entities.TireInStock, back.Status)
	assert.Equal(t, 1, back.RecapCount)
	assert.Equal(t, 2, back.Life())

	// input untouched
	assert.Equal(t, 0, worn.RecapCount)
}

func TestPlanStatusChangeScrapNeverCounts(t *testing.T) {
	fromStock := &entities.Tire{ID: "t1", Status: entities.TireInStock, RecapCount: 2}
	scrapped, err := PlanStatusChange(fromStock, entities.TireScrapped)
	require.NoError(t, err)
	assert.Equal(t, 2, scrapped.RecapCount)

	fromRecap := &entities.Tire{ID: "t2", Status: entities.TireInRecap, RecapCount: 1}
	scrapped, err = PlanStatusChange(fromRecap, entities.TireScrapped)
	require.NoError(t, err)
	assert.Equal(t, 1, scrapped.RecapCount)
}

func TestPlanStatusChangeRejectsInUseMoves(t *testing.T) {
	mounted := mountedTire("t1", "S-001", "veh-1", "1E")
	_, err := PlanStatusChange(mounted, entities.TireInStock)
	var domainErr *Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeBadTransition, domainErr.Code)

	stock := stockTire("t2", "S-002")
	_, err = PlanStatusChange(stock, entities.TireInUse)
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, CodeBadTransition, domainErr.Code)
}

// Full recap cycle per the lifecycle rules: mount, dismount to recapping,
// recap completed, mount again. Exactly one increment per cycle.
func TestRecapCycleEndToEnd(t *testing.T) {
	v := deliveryVan()
	t1 := stockTire("t1", "S-001")

	plan, err := PlanAssign(v, "1E", t1, nil, "")
	require.NoError(t, err)
	mounted := plan.Incoming

	dismounted, err := PlanUnassign(v, "1E", &mounted, entities.TireInRecap)
	require.NoError(t, err)
	assert.Equal(t, 0, dismounted.RecapCount)

	recapped, err := PlanStatusChange(dismounted, entities.TireInStock)
	require.NoError(t, err)
	assert.Equal(t, 1, recapped.RecapCount)

	plan, err = PlanAssign(v, "1E", recapped, nil, "")
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Incoming.RecapCount)
	assert.Equal(t, 2, plan.Incoming.Life())
}
