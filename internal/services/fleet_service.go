package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rodacerta/frotagest/internal/common"
	"rodacerta/frotagest/internal/constants"
	"rodacerta/frotagest/internal/layout"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

const tireMapTTL = 5 * time.Minute

// FleetRepo is the vehicle persistence surface the fleet service needs.
type FleetRepo interface {
	VehicleStore
	VehicleByPlate(ctx context.Context, plate string) (*entities.Vehicle, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	CreateVehicle(ctx context.Context, v *entities.Vehicle) error
	UpdateVehicle(ctx context.Context, v *entities.Vehicle) error
}

// FleetService owns the vehicle registry and the per-vehicle tire map.
// Tire maps are the SPA's hottest read, so they sit behind the cache and
// get invalidated whenever an engine operation touches the vehicle.
type FleetService struct {
	vehicles FleetRepo
	tires    tire.Store
	cache    common.CacheInterface
}

func NewFleetService(vehicles FleetRepo, tires tire.Store, cache common.CacheInterface) *FleetService {
	return &FleetService{vehicles: vehicles, tires: tires, cache: cache}
}

// TireMap returns the vehicle's layout-ordered tire set, cached.
func (svc *FleetService) TireMap(ctx context.Context, vehicleID string) (*dtos.TireMapResponse, error) {
	return cachedAs[dtos.TireMapResponse](svc.cache, svc.tireMapKey(vehicleID), tireMapTTL, func() (any, error) {
		vehicle, err := svc.Vehicle(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		mounted, err := svc.tires.TiresByVehicle(ctx, vehicleID)
		if err != nil {
			return nil, err
		}
		return BuildTireMap(vehicle, mounted), nil
	})
}

// InvalidateTireMap drops the cached map after an engine operation.
func (svc *FleetService) InvalidateTireMap(vehicleID string) {
	svc.cache.Delete(svc.tireMapKey(vehicleID))
}

func (svc *FleetService) tireMapKey(vehicleID string) string {
	return string(constants.CachePrefixTireMap) + vehicleID
}

// Vehicle returns one vehicle by id.
func (svc *FleetService) Vehicle(ctx context.Context, id string) (*entities.Vehicle, error) {
	v, err := svc.vehicles.VehicleByID(ctx, id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, vehicleNotFound(id)
		}
		return nil, err
	}
	return v, nil
}

// VehicleLayout returns the axle/slot layout for one vehicle's type.
func (svc *FleetService) VehicleLayout(ctx context.Context, id string) (layout.Layout, error) {
	v, err := svc.Vehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	return layout.LayoutFor(v.Type), nil
}

// ListVehicles returns the whole fleet.
func (svc *FleetService) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	return svc.vehicles.ListVehicles(ctx)
}

// CreateVehicle registers a vehicle. The type must have a layout in the
// catalog, otherwise no tire could ever be assigned to it.
func (svc *FleetService) CreateVehicle(ctx context.Context, req *dtos.VehicleReq) (*entities.Vehicle, error) {
	vtype, err := parseVehicleType(req.Type)
	if err != nil {
		return nil, err
	}
	if req.Plate == "" {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "plate", Message: "plate is required"}
	}
	if existing, err := svc.vehicles.VehicleByPlate(ctx, req.Plate); err == nil && existing != nil {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "plate", Message: fmt.Sprintf("plate %s is already registered", req.Plate)}
	} else if err != nil && !errors.Is(err, tire.ErrNotFound) {
		return nil, err
	}

	v := &entities.Vehicle{
		ID:       uuid.NewString(),
		Plate:    req.Plate,
		Type:     vtype,
		Make:     req.Make,
		Model:    req.Model,
		Year:     req.Year,
		Color:    req.Color,
		Odometer: req.Odometer,
		Chassis:  req.Chassis,
		IsActive: true,
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	if err := svc.vehicles.CreateVehicle(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// UpdateVehicle rewrites the registry fields of a vehicle. Changing the
// type is refused while tires are mounted: the old layout's position
// codes may not exist in the new one.
func (svc *FleetService) UpdateVehicle(ctx context.Context, id string, req *dtos.VehicleReq) (*entities.Vehicle, error) {
	v, err := svc.Vehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	vtype, err := parseVehicleType(req.Type)
	if err != nil {
		return nil, err
	}
	if vtype != v.Type {
		mounted, err := svc.tires.TiresByVehicle(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(mounted) > 0 {
			return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeTireMounted,
				Field: "type", Message: fmt.Sprintf("vehicle %s has %d mounted tires; unassign them before changing the type", v.Plate, len(mounted))}
		}
	}

	v.Plate = req.Plate
	v.Type = vtype
	v.Make = req.Make
	v.Model = req.Model
	v.Year = req.Year
	v.Color = req.Color
	v.Odometer = req.Odometer
	v.Chassis = req.Chassis
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}

	if err := svc.vehicles.UpdateVehicle(ctx, v); err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, vehicleNotFound(id)
		}
		return nil, err
	}
	svc.InvalidateTireMap(id)
	return v, nil
}

// Layouts exposes the static type → position catalog for the UI.
func (svc *FleetService) Layouts() map[entities.VehicleType]layout.Layout {
	out := make(map[entities.VehicleType]layout.Layout, len(entities.AllVehicleTypes))
	for _, t := range entities.AllVehicleTypes {
		out[t] = layout.LayoutFor(t)
	}
	return out
}

func parseVehicleType(raw string) (entities.VehicleType, error) {
	vtype, ok := entities.ParseVehicleType(raw)
	if !ok {
		return "", &tire.Error{Kind: tire.KindValidation, Code: tire.CodeNoLayout,
			Field: "type", Message: fmt.Sprintf("unknown vehicle type %q", raw)}
	}
	return vtype, nil
}

func vehicleNotFound(id string) error {
	return tire.NotFoundErr(tire.CodeVehicleNotFound, "vehicle %s not found", id)
}
