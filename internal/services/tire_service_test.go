package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

func TestTireCreateEntersStock(t *testing.T) {
	store := newFakeTireStore()
	svc := NewTireService(store)

	created, err := svc.Create(context.Background(), &dtos.TireReq{
		Serial:       "FG-3001",
		Manufacturer: "Bridgestone",
		Model:        "R268",
		Dimension:    "295/80R22.5",
		PurchasedAt:  "2025-02-14",
		ExpiresAt:    "2030-02-14",
		Cost:         2890.00,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entities.TireInStock, created.Status)
	assert.Equal(t, 0, created.RecapCount)
	require.NotNil(t, created.PurchasedAt)
	assert.Equal(t, 2025, created.PurchasedAt.Year())
}

func TestTireCreateDuplicateSerial(t *testing.T) {
	store := newFakeTireStore(entities.Tire{ID: "t1", Serial: "FG-3001", Status: entities.TireInStock})
	svc := NewTireService(store)

	_, err := svc.Create(context.Background(), &dtos.TireReq{Serial: "FG-3001"})
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeSerialTaken, domainErr.Code)
	assert.Equal(t, "serial", domainErr.Field)
}

func TestTireCreateBadDate(t *testing.T) {
	svc := NewTireService(newFakeTireStore())

	_, err := svc.Create(context.Background(), &dtos.TireReq{Serial: "FG-3002", PurchasedAt: "14/02/2025"})
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeBadField, domainErr.Code)
	assert.Equal(t, "purchased_at", domainErr.Field)
}

func TestTireUpdateKeepsEngineFields(t *testing.T) {
	vehID := "veh-1"
	pos := "1E"
	store := newFakeTireStore(entities.Tire{
		ID: "t1", Serial: "FG-3001", Status: entities.TireInUse,
		VehicleID: &vehID, PositionCode: &pos, RecapCount: 2, Version: 5,
	})
	svc := NewTireService(store)

	updated, err := svc.Update(context.Background(), "t1", &dtos.TireReq{
		Serial:       "FG-3001",
		Manufacturer: "Michelin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Michelin", updated.Manufacturer)
	assert.Equal(t, entities.TireInUse, updated.Status)
	assert.Equal(t, 2, updated.RecapCount)
	require.NotNil(t, updated.PositionCode)
	assert.Equal(t, "1E", *updated.PositionCode)
}

func TestTireUpdateSerialCollision(t *testing.T) {
	store := newFakeTireStore(
		entities.Tire{ID: "t1", Serial: "FG-3001", Status: entities.TireInStock},
		entities.Tire{ID: "t2", Serial: "FG-3002", Status: entities.TireInStock},
	)
	svc := NewTireService(store)

	_, err := svc.Update(context.Background(), "t1", &dtos.TireReq{Serial: "FG-3002"})
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeSerialTaken, domainErr.Code)
}

func TestChangeStatusRecapCompletion(t *testing.T) {
	store := newFakeTireStore(entities.Tire{ID: "t1", Serial: "FG-3001", Status: entities.TireInRecap, RecapCount: 1})
	svc := NewTireService(store)

	updated, err := svc.ChangeStatus(context.Background(), "t1", entities.TireInStock)
	require.NoError(t, err)
	assert.Equal(t, entities.TireInStock, updated.Status)
	assert.Equal(t, 2, updated.RecapCount, "recap completion bumps the counter")

	stored, err := store.TireByID(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.RecapCount)
}

func TestChangeStatusScrapKeepsCounter(t *testing.T) {
	store := newFakeTireStore(entities.Tire{ID: "t1", Serial: "FG-3001", Status: entities.TireInStock, RecapCount: 1})
	svc := NewTireService(store)

	updated, err := svc.ChangeStatus(context.Background(), "t1", entities.TireScrapped)
	require.NoError(t, err)
	assert.Equal(t, entities.TireScrapped, updated.Status)
	assert.Equal(t, 1, updated.RecapCount)
}

func TestChangeStatusMountedRejected(t *testing.T) {
	vehID := "veh-1"
	pos := "1E"
	store := newFakeTireStore(entities.Tire{
		ID: "t1", Serial: "FG-3001", Status: entities.TireInUse, VehicleID: &vehID, PositionCode: &pos,
	})
	svc := NewTireService(store)

	_, err := svc.ChangeStatus(context.Background(), "t1", entities.TireInStock)
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeBadTransition, domainErr.Code)
}

func TestDeleteMountedRefused(t *testing.T) {
	vehID := "veh-1"
	pos := "1E"
	store := newFakeTireStore(entities.Tire{
		ID: "t1", Serial: "FG-3001", Status: entities.TireInUse, VehicleID: &vehID, PositionCode: &pos,
	})
	svc := NewTireService(store)

	err := svc.Delete(context.Background(), "t1")
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeTireMounted, domainErr.Code)

	_, err = store.TireByID(context.Background(), "t1")
	assert.NoError(t, err, "tire still present")
}

func TestDeleteUnmounted(t *testing.T) {
	store := newFakeTireStore(entities.Tire{ID: "t1", Serial: "FG-3001", Status: entities.TireScrapped})
	svc := NewTireService(store)

	require.NoError(t, svc.Delete(context.Background(), "t1"))

	_, err := svc.Get(context.Background(), "t1")
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeTireNotFound, domainErr.Code)
}
