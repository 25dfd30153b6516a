package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	gormModels "rodacerta/frotagest/internal/models/gorm"
	"rodacerta/frotagest/internal/tire"
)

type fakeFuelLogStore struct {
	logs map[string]*gormModels.FuelLog
	seq  int
}

func (s *fakeFuelLogStore) Create(_ context.Context, log *gormModels.FuelLog) error {
	s.seq++
	log.ID = fmt.Sprintf("fl-%d", s.seq)
	s.logs[log.ID] = log
	return nil
}

func (s *fakeFuelLogStore) ListByVehicle(_ context.Context, vehicleID string) ([]gormModels.FuelLog, error) {
	var out []gormModels.FuelLog
	for _, l := range s.logs {
		if l.VehicleID == vehicleID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (s *fakeFuelLogStore) Delete(_ context.Context, id string) error {
	if _, ok := s.logs[id]; !ok {
		return tire.ErrNotFound
	}
	delete(s.logs, id)
	return nil
}

type fakePartStore struct {
	parts map[string]*gormModels.PartReplacement
}

func (s *fakePartStore) Create(_ context.Context, part *gormModels.PartReplacement) error {
	part.ID = "pt-1"
	s.parts[part.ID] = part
	return nil
}

func (s *fakePartStore) ListByVehicle(_ context.Context, vehicleID string) ([]gormModels.PartReplacement, error) {
	var out []gormModels.PartReplacement
	for _, p := range s.parts {
		if p.VehicleID == vehicleID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *fakePartStore) Delete(_ context.Context, id string) error {
	if _, ok := s.parts[id]; !ok {
		return tire.ErrNotFound
	}
	delete(s.parts, id)
	return nil
}

type fakeInspectionStore struct {
	inspections []*gormModels.InspectionChecklist
}

func (s *fakeInspectionStore) Create(_ context.Context, insp *gormModels.InspectionChecklist) error {
	insp.ID = "in-1"
	s.inspections = append(s.inspections, insp)
	return nil
}

func (s *fakeInspectionStore) ListByVehicle(_ context.Context, vehicleID string) ([]gormModels.InspectionChecklist, error) {
	var out []gormModels.InspectionChecklist
	for _, i := range s.inspections {
		if i.VehicleID == vehicleID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func recordsFixture() (*fakeFuelLogStore, *RecordsService) {
	fuel := &fakeFuelLogStore{logs: map[string]*gormModels.FuelLog{}}
	parts := &fakePartStore{parts: map[string]*gormModels.PartReplacement{}}
	inspections := &fakeInspectionStore{}
	fleet := &fakeVehicleStore{vehicles: map[string]*entities.Vehicle{
		"veh-1": {ID: "veh-1", Plate: "RTA2C34", Type: entities.VehicleToco},
	}}
	return fuel, NewRecordsService(fuel, parts, inspections, fleet)
}

func TestAddFuelLogDerivesTotal(t *testing.T) {
	_, svc := recordsFixture()

	log, err := svc.AddFuelLog(context.Background(), "veh-1", "op-1", &dtos.FuelLogReq{
		Date:          "2026-03-10",
		Odometer:      154_200,
		Liters:        180,
		PricePerLiter: 6.15,
		FuelType:      "diesel_s10",
	})
	require.NoError(t, err)

	assert.InDelta(t, 1107.0, log.Total, 0.001)
	assert.True(t, log.FullTank, "full tank defaults to true")
	require.NotNil(t, log.OperatorID)
	assert.Equal(t, "op-1", *log.OperatorID)
}

func TestAddFuelLogPartialTank(t *testing.T) {
	_, svc := recordsFixture()

	partial := false
	log, err := svc.AddFuelLog(context.Background(), "veh-1", "", &dtos.FuelLogReq{
		Date:     "2026-03-10",
		Liters:   60,
		FullTank: &partial,
	})
	require.NoError(t, err)

	assert.False(t, log.FullTank)
	assert.Nil(t, log.OperatorID, "anonymous caller leaves operator unset")
}

func TestAddFuelLogRequiresDate(t *testing.T) {
	_, svc := recordsFixture()

	_, err := svc.AddFuelLog(context.Background(), "veh-1", "", &dtos.FuelLogReq{Liters: 60})

	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.KindValidation, domainErr.Kind)
	assert.Equal(t, "date", domainErr.Field)
}

func TestAddFuelLogUnknownVehicle(t *testing.T) {
	_, svc := recordsFixture()

	_, err := svc.AddFuelLog(context.Background(), "veh-missing", "", &dtos.FuelLogReq{Date: "2026-03-10"})

	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.KindNotFound, domainErr.Kind)
	assert.Equal(t, tire.CodeVehicleNotFound, domainErr.Code)
}

func TestDeleteFuelLog(t *testing.T) {
	fuel, svc := recordsFixture()
	ctx := context.Background()

	log, err := svc.AddFuelLog(ctx, "veh-1", "", &dtos.FuelLogReq{Date: "2026-03-10", Liters: 60})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteFuelLog(ctx, log.ID))
	assert.Empty(t, fuel.logs)

	err = svc.DeleteFuelLog(ctx, log.ID)
	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, tire.CodeRecordNotFound, domainErr.Code)
}

func TestAddPartRequiresName(t *testing.T) {
	_, svc := recordsFixture()

	_, err := svc.AddPart(context.Background(), "veh-1", &dtos.PartReplacementReq{Date: "2026-03-10"})

	var domainErr *tire.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "part_name", domainErr.Field)
}

func TestAddPartAndList(t *testing.T) {
	_, svc := recordsFixture()
	ctx := context.Background()

	_, err := svc.AddPart(ctx, "veh-1", &dtos.PartReplacementReq{
		PartName: "brake pad",
		Date:     "2026-03-10",
		Cost:     420.50,
	})
	require.NoError(t, err)

	parts, err := svc.Parts(ctx, "veh-1")
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.Equal(t, "brake pad", parts[0].PartName)
}

func TestAddInspectionDefaultsItems(t *testing.T) {
	_, svc := recordsFixture()

	insp, err := svc.AddInspection(context.Background(), "veh-1", "op-1", &dtos.InspectionReq{
		Date: "2026-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, "[]", insp.Items)
	assert.Equal(t, "op-1", insp.OperatorID)
}
