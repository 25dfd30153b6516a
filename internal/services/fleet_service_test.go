package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/common"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

// jsonCache behaves like the Redis-backed cache: values are stored
// marshaled and a hit is unmarshaled into interface{}, so a cached
// struct comes back as map[string]interface{}.
type jsonCache struct {
	entries map[string][]byte
}

var _ common.CacheInterface = (*jsonCache)(nil)

func newJSONCache() *jsonCache {
	return &jsonCache{entries: map[string][]byte{}}
}

func (c *jsonCache) Set(key string, value interface{}, _ time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.entries[key] = data
}

func (c *jsonCache) Get(key string) (interface{}, bool) {
	data, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	var result interface{}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return result, true
}

func (c *jsonCache) Delete(key string) {
	delete(c.entries, key)
}

func (c *jsonCache) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := c.Get(key); found {
		return val, nil
	}
	val, err := loader()
	if err != nil {
		return nil, err
	}
	c.Set(key, val, duration)
	return val, nil
}

func (c *jsonCache) Close() error {
	return nil
}

type fakeFleetRepo struct {
	fakeVehicleStore
}

func (r *fakeFleetRepo) VehicleByPlate(_ context.Context, plate string) (*entities.Vehicle, error) {
	for _, v := range r.vehicles {
		if v.Plate == plate {
			return v, nil
		}
	}
	return nil, tire.ErrNotFound
}

func (r *fakeFleetRepo) ListVehicles(_ context.Context) ([]entities.Vehicle, error) {
	var out []entities.Vehicle
	for _, v := range r.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func (r *fakeFleetRepo) CreateVehicle(_ context.Context, v *entities.Vehicle) error {
	r.vehicles[v.ID] = v
	return nil
}

func (r *fakeFleetRepo) UpdateVehicle(_ context.Context, v *entities.Vehicle) error {
	if _, ok := r.vehicles[v.ID]; !ok {
		return tire.ErrNotFound
	}
	r.vehicles[v.ID] = v
	return nil
}

func fleetFixture() (*fakeFleetRepo, *fakeTireStore, *FleetService) {
	vehID := "veh-1"
	pos := "1E"
	repo := &fakeFleetRepo{fakeVehicleStore{vehicles: map[string]*entities.Vehicle{
		"veh-1": {ID: "veh-1", Plate: "RTA2C34", Type: entities.VehicleToco},
	}}}
	tires := newFakeTireStore(
		entities.Tire{ID: "t1", Serial: "FG-1001", Status: entities.TireInUse, VehicleID: &vehID, PositionCode: &pos},
	)
	svc := NewFleetService(repo, tires, common.NewCacheService(60, 120))
	return repo, tires, svc
}

func TestTireMapCachesUntilInvalidated(t *testing.T) {
	_, tires, svc := fleetFixture()
	ctx := context.Background()

	first, err := svc.TireMap(ctx, "veh-1")
	require.NoError(t, err)
	require.NotNil(t, first.Positions["1E"])
	assert.Equal(t, "t1", first.Positions["1E"].ID)

	// mutate behind the cache's back
	require.NoError(t, tires.DeleteTire(ctx, "t1"))

	cached, err := svc.TireMap(ctx, "veh-1")
	require.NoError(t, err)
	assert.NotNil(t, cached.Positions["1E"], "served from cache")

	svc.InvalidateTireMap("veh-1")

	fresh, err := svc.TireMap(ctx, "veh-1")
	require.NoError(t, err)
	assert.Nil(t, fresh.Positions["1E"], "reloaded after invalidation")
}

func TestTireMapTypedAfterJSONCacheHit(t *testing.T) {
	repo, tires, _ := fleetFixture()
	svc := NewFleetService(repo, tires, newJSONCache())
	ctx := context.Background()

	warm, err := svc.TireMap(ctx, "veh-1")
	require.NoError(t, err)
	require.NotNil(t, warm.Positions["1E"])

	hit, err := svc.TireMap(ctx, "veh-1")
	require.NoError(t, err, "cache hit comes back as map[string]interface{} and must be re-typed")
	assert.Equal(t, "RTA2C34", hit.Plate)
	require.NotNil(t, hit.Positions["1E"])
	assert.Equal(t, "t1", hit.Positions["1E"].ID)
}

func TestTireMapUnknownVehicle(t *testing.T) {
	_, _, svc := fleetFixture()

	_, err := svc.TireMap(context.Background(), "veh-missing")
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeVehicleNotFound, domainErr.Code)
}

func TestCreateVehicleUnknownType(t *testing.T) {
	_, _, svc := fleetFixture()

	_, err := svc.CreateVehicle(context.Background(), &dtos.VehicleReq{Plate: "RTB1D23", Type: "hovercraft"})
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeNoLayout, domainErr.Code)
}

func TestCreateVehicleDuplicatePlate(t *testing.T) {
	_, _, svc := fleetFixture()

	_, err := svc.CreateVehicle(context.Background(), &dtos.VehicleReq{Plate: "RTA2C34", Type: "truck"})
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeBadField, domainErr.Code)
	assert.Equal(t, "plate", domainErr.Field)
}

func TestUpdateVehicleTypeChangeBlockedWhileMounted(t *testing.T) {
	_, _, svc := fleetFixture()

	_, err := svc.UpdateVehicle(context.Background(), "veh-1", &dtos.VehicleReq{
		Plate: "RTA2C34", Type: "passenger",
	})
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeTireMounted, domainErr.Code)
}

func TestUpdateVehicleTypeChangeAllowedWhenEmpty(t *testing.T) {
	_, tires, svc := fleetFixture()
	ctx := context.Background()

	require.NoError(t, tires.DeleteTire(ctx, "t1"))

	updated, err := svc.UpdateVehicle(ctx, "veh-1", &dtos.VehicleReq{
		Plate: "RTA2C34", Type: "truck",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.VehicleTruck, updated.Type)
}

func TestLayoutsCoverAllTypes(t *testing.T) {
	_, _, svc := fleetFixture()

	layouts := svc.Layouts()
	assert.Len(t, layouts, len(entities.AllVehicleTypes))
	for vtype, l := range layouts {
		assert.NotEmpty(t, l, "type %s has a layout", vtype)
	}
}
