package tire

import (
	"context"
	"errors"

	"rodacerta/frotagest/internal/models/entities"
)

// Store errors. ErrVersionConflict means the optimistic version check on an
// update matched zero rows: another session wrote the record first.
var (
	ErrNotFound        = errors.New("tire store: not found")
	ErrVersionConflict = errors.New("tire store: version conflict")
)

// Tx is the transaction-scoped view of the tire store. Engine operations
// read and write through one Tx so the whole mutation commits or rolls
// back as a unit.
type Tx interface {
	// TireByID returns the tire or ErrNotFound.
	TireByID(ctx context.Context, id string) (*entities.Tire, error)
	// TireAtPosition returns the in-use tire bound to (vehicleID, position),
	// or nil with no error when the slot is empty.
	TireAtPosition(ctx context.Context, vehicleID, position string) (*entities.Tire, error)
	// SaveTire writes the record guarded by its Version field and bumps it.
	// Returns ErrVersionConflict when the guard fails.
	SaveTire(ctx context.Context, t *entities.Tire) error
}

// Store is the persistence port the engine and the read-side services
// depend on. Only engine transactions mutate status, vehicle binding and
// recap counters; everything else is a read-only consumer.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error

	TireByID(ctx context.Context, id string) (*entities.Tire, error)
	TireBySerial(ctx context.Context, serial string) (*entities.Tire, error)
	TiresByVehicle(ctx context.Context, vehicleID string) ([]entities.Tire, error)
	TiresByStatus(ctx context.Context, statuses ...entities.TireStatus) ([]entities.Tire, error)
	ListTires(ctx context.Context) ([]entities.Tire, error)

	CreateTire(ctx context.Context, t *entities.Tire) error
	SaveTire(ctx context.Context, t *entities.Tire) error
	DeleteTire(ctx context.Context, id string) error
}
