package services

import (
	"context"
	"errors"

	"rodacerta/frotagest/internal/layout"
	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

// VehicleStore is the slice of vehicle persistence the engine needs.
type VehicleStore interface {
	VehicleByID(ctx context.Context, id string) (*entities.Vehicle, error)
}

// AssignmentService executes the position-assignment and swap engines.
// Each operation is a single serializable transaction: the planners in
// internal/tire validate and compute the mutation, the store applies it
// with optimistic version guards, and a lost race comes back as a
// conflict error the caller can retry after reloading.
type AssignmentService struct {
	tires    tire.Store
	vehicles VehicleStore
}

func NewAssignmentService(tires tire.Store, vehicles VehicleStore) *AssignmentService {
	return &AssignmentService{tires: tires, vehicles: vehicles}
}

// Assign mounts a stock tire at a vehicle position, displacing any
// current occupant to the requested disposition. Returns the updated
// per-position tire map for the vehicle.
func (svc *AssignmentService) Assign(ctx context.Context, vehicleID, position, tireID string, disposition entities.TireStatus) (*dtos.TireMapResponse, error) {
	vehicle, err := svc.vehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	err = svc.tires.InTx(ctx, func(tx tire.Tx) error {
		incoming, err := tx.TireByID(ctx, tireID)
		if err != nil {
			if errors.Is(err, tire.ErrNotFound) {
				return tire.NotFoundErr(tire.CodeTireNotFound, "tire %s not found", tireID)
			}
			return err
		}

		outgoing, err := tx.TireAtPosition(ctx, vehicleID, position)
		if err != nil {
			return err
		}

		plan, err := tire.PlanAssign(vehicle, position, incoming, outgoing, disposition)
		if err != nil {
			return err
		}

		if plan.Outgoing != nil {
			if err := tx.SaveTire(ctx, plan.Outgoing); err != nil {
				return err
			}
		}
		return tx.SaveTire(ctx, &plan.Incoming)
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	logging.Info("Tire assigned",
		"vehicle_id", vehicleID,
		"position", position,
		"tire_id", tireID,
		"outgoing_disposition", string(disposition),
	)
	return svc.tireMap(ctx, vehicle)
}

// Swap exchanges the occupants of two distinct positions on the same
// vehicle. Statuses never change; an empty side makes this a move.
func (svc *AssignmentService) Swap(ctx context.Context, vehicleID, positionA, positionB string) (*dtos.TireMapResponse, error) {
	vehicle, err := svc.vehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	err = svc.tires.InTx(ctx, func(tx tire.Tx) error {
		occupantA, err := tx.TireAtPosition(ctx, vehicleID, positionA)
		if err != nil {
			return err
		}
		occupantB, err := tx.TireAtPosition(ctx, vehicleID, positionB)
		if err != nil {
			return err
		}

		plan, err := tire.PlanSwap(vehicle, positionA, positionB, occupantA, occupantB)
		if err != nil {
			return err
		}

		if plan.A != nil {
			if err := tx.SaveTire(ctx, plan.A); err != nil {
				return err
			}
		}
		if plan.B != nil {
			if err := tx.SaveTire(ctx, plan.B); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	logging.Info("Positions swapped",
		"vehicle_id", vehicleID,
		"position_a", positionA,
		"position_b", positionB,
	)
	return svc.tireMap(ctx, vehicle)
}

// Unassign removes the occupant of a position without a replacement,
// sending it to the requested disposition.
func (svc *AssignmentService) Unassign(ctx context.Context, vehicleID, position string, disposition entities.TireStatus) (*dtos.TireMapResponse, error) {
	vehicle, err := svc.vehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	err = svc.tires.InTx(ctx, func(tx tire.Tx) error {
		occupant, err := tx.TireAtPosition(ctx, vehicleID, position)
		if err != nil {
			return err
		}

		updated, err := tire.PlanUnassign(vehicle, position, occupant, disposition)
		if err != nil {
			return err
		}
		return tx.SaveTire(ctx, updated)
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}

	logging.Info("Tire unassigned",
		"vehicle_id", vehicleID,
		"position", position,
		"disposition", string(disposition),
	)
	return svc.tireMap(ctx, vehicle)
}

func (svc *AssignmentService) vehicle(ctx context.Context, id string) (*entities.Vehicle, error) {
	vehicle, err := svc.vehicles.VehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, tire.NotFoundErr(tire.CodeVehicleNotFound, "vehicle %s not found", id)
		}
		return nil, err
	}
	return vehicle, nil
}

func (svc *AssignmentService) tireMap(ctx context.Context, vehicle *entities.Vehicle) (*dtos.TireMapResponse, error) {
	mounted, err := svc.tires.TiresByVehicle(ctx, vehicle.ID)
	if err != nil {
		return nil, err
	}
	return BuildTireMap(vehicle, mounted), nil
}

// BuildTireMap lays the vehicle's mounted tires over its layout, producing
// one slot per position with nil for empty slots.
func BuildTireMap(vehicle *entities.Vehicle, mounted []entities.Tire) *dtos.TireMapResponse {
	byPosition := make(map[string]*entities.Tire, len(mounted))
	for i := range mounted {
		t := mounted[i]
		if t.PositionCode != nil {
			byPosition[*t.PositionCode] = &t
		}
	}

	resp := &dtos.TireMapResponse{
		VehicleID: vehicle.ID,
		Plate:     vehicle.Plate,
		Type:      vehicle.Type,
		Positions: map[string]*entities.Tire{},
	}
	for _, axle := range layout.LayoutFor(vehicle.Type) {
		view := dtos.AxleView{Label: axle.Label}
		for _, code := range axle.Positions {
			occupant := byPosition[code]
			view.Slots = append(view.Slots, dtos.SlotView{Position: code, Tire: occupant})
			resp.Positions[code] = occupant
		}
		resp.Axles = append(resp.Axles, view)
	}
	return resp
}

// mapStoreErr translates optimistic-concurrency losses into the conflict
// error the UI distinguishes from plain validation failures.
func mapStoreErr(err error) error {
	if errors.Is(err, tire.ErrVersionConflict) {
		return tire.ConflictErr()
	}
	return err
}
