package services

import (
	"context"
	"errors"
	"time"

	"rodacerta/frotagest/internal/models/dtos"
	gormModels "rodacerta/frotagest/internal/models/gorm"
	"rodacerta/frotagest/internal/tire"
)

// FuelLogStore, PartStore and InspectionStore mirror the GORM repositories
// so the service stays mockable in tests.
type FuelLogStore interface {
	Create(ctx context.Context, log *gormModels.FuelLog) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]gormModels.FuelLog, error)
	Delete(ctx context.Context, id string) error
}

type PartStore interface {
	Create(ctx context.Context, part *gormModels.PartReplacement) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]gormModels.PartReplacement, error)
	Delete(ctx context.Context, id string) error
}

type InspectionStore interface {
	Create(ctx context.Context, insp *gormModels.InspectionChecklist) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]gormModels.InspectionChecklist, error)
}

// RecordsService manages the per-vehicle maintenance history: refuelings,
// part replacements and pre-trip inspection checklists. Records hang off a
// vehicle, so every write first checks the vehicle exists.
type RecordsService struct {
	fuelLogs    FuelLogStore
	parts       PartStore
	inspections InspectionStore
	fleet       VehicleStore
}

func NewRecordsService(fuelLogs FuelLogStore, parts PartStore, inspections InspectionStore, fleet VehicleStore) *RecordsService {
	return &RecordsService{fuelLogs: fuelLogs, parts: parts, inspections: inspections, fleet: fleet}
}

// AddFuelLog records a refueling. Total is derived from liters and price
// when the caller leaves it to us.
func (svc *RecordsService) AddFuelLog(ctx context.Context, vehicleID, operatorID string, req *dtos.FuelLogReq) (*gormModels.FuelLog, error) {
	if err := svc.checkVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	date, err := requireDate(req.Date)
	if err != nil {
		return nil, err
	}

	log := &gormModels.FuelLog{
		VehicleID:     vehicleID,
		Date:          date,
		Odometer:      req.Odometer,
		Liters:        req.Liters,
		PricePerLiter: req.PricePerLiter,
		Total:         req.Liters * req.PricePerLiter,
		FuelType:      req.FuelType,
		Station:       req.Station,
		FullTank:      true,
	}
	if operatorID != "" {
		log.OperatorID = &operatorID
	}
	if req.FullTank != nil {
		log.FullTank = *req.FullTank
	}
	if err := svc.fuelLogs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// FuelLogs lists a vehicle's refuelings in date order.
func (svc *RecordsService) FuelLogs(ctx context.Context, vehicleID string) ([]gormModels.FuelLog, error) {
	if err := svc.checkVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	return svc.fuelLogs.ListByVehicle(ctx, vehicleID)
}

// DeleteFuelLog removes one refueling record.
func (svc *RecordsService) DeleteFuelLog(ctx context.Context, id string) error {
	if err := svc.fuelLogs.Delete(ctx, id); err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return recordNotFound("fuel log", id)
		}
		return err
	}
	return nil
}

// AddPart records a part replacement.
func (svc *RecordsService) AddPart(ctx context.Context, vehicleID string, req *dtos.PartReplacementReq) (*gormModels.PartReplacement, error) {
	if err := svc.checkVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	date, err := requireDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.PartName == "" {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "part_name", Message: "part_name is required"}
	}

	part := &gormModels.PartReplacement{
		VehicleID:     vehicleID,
		PartName:      req.PartName,
		Supplier:      req.Supplier,
		InvoiceNumber: req.InvoiceNumber,
		Odometer:      req.Odometer,
		Cost:          req.Cost,
		Date:          date,
		Notes:         req.Notes,
	}
	if err := svc.parts.Create(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// Parts lists a vehicle's part replacements, most recent first.
func (svc *RecordsService) Parts(ctx context.Context, vehicleID string) ([]gormModels.PartReplacement, error) {
	if err := svc.checkVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	return svc.parts.ListByVehicle(ctx, vehicleID)
}

// DeletePart removes one part replacement record.
func (svc *RecordsService) DeletePart(ctx context.Context, id string) error {
	if err := svc.parts.Delete(ctx, id); err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return recordNotFound("part replacement", id)
		}
		return err
	}
	return nil
}

// AddInspection stores a pre-trip checklist submission.
func (svc *RecordsService) AddInspection(ctx context.Context, vehicleID, operatorID string, req *dtos.InspectionReq) (*gormModels.InspectionChecklist, error) {
	if err := svc.checkVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	date, err := requireDate(req.Date)
	if err != nil {
		return nil, err
	}

	insp := &gormModels.InspectionChecklist{
		VehicleID:  vehicleID,
		OperatorID: operatorID,
		Date:       date,
		Odometer:   req.Odometer,
		Items:      req.Items,
		Signature:  req.Signature,
		Notes:      req.Notes,
	}
	if insp.Items == "" {
		insp.Items = "[]"
	}
	if err := svc.inspections.Create(ctx, insp); err != nil {
		return nil, err
	}
	return insp, nil
}

// Inspections lists a vehicle's checklist submissions.
func (svc *RecordsService) Inspections(ctx context.Context, vehicleID string) ([]gormModels.InspectionChecklist, error) {
	if err := svc.checkVehicle(ctx, vehicleID); err != nil {
		return nil, err
	}
	return svc.inspections.ListByVehicle(ctx, vehicleID)
}

func (svc *RecordsService) checkVehicle(ctx context.Context, vehicleID string) error {
	if _, err := svc.fleet.VehicleByID(ctx, vehicleID); err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return vehicleNotFound(vehicleID)
		}
		return err
	}
	return nil
}

func recordNotFound(kind, id string) error {
	return tire.NotFoundErr(tire.CodeRecordNotFound, "%s %s not found", kind, id)
}

func requireDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "date", Message: "date is required"}
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "date", Message: "date must be YYYY-MM-DD"}
	}
	return d, nil
}
