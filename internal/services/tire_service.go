package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rodacerta/frotagest/internal/logging"
	"rodacerta/frotagest/internal/models/dtos"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

// TireService owns the registry side of the tire lifecycle: purchase
// records, off-vehicle status moves and deletion. Mounting and removal
// belong to AssignmentService.
type TireService struct {
	tires tire.Store
}

func NewTireService(tires tire.Store) *TireService {
	return &TireService{tires: tires}
}

// Create registers a purchased tire. New tires always enter as in_stock;
// serials are unique across the registry.
func (svc *TireService) Create(ctx context.Context, req *dtos.TireReq) (*entities.Tire, error) {
	if req.Serial == "" {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: "serial", Message: "serial is required"}
	}

	existing, err := svc.tires.TireBySerial(ctx, req.Serial)
	if err != nil && !errors.Is(err, tire.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeSerialTaken,
			Field: "serial", Message: fmt.Sprintf("serial %s is already registered", req.Serial)}
	}

	t := &entities.Tire{
		ID:     uuid.NewString(),
		Status: entities.TireInStock,
	}
	if err := applyTireReq(t, req); err != nil {
		return nil, err
	}

	if err := svc.tires.CreateTire(ctx, t); err != nil {
		return nil, err
	}
	logging.Info("Tire registered", "tire_id", t.ID, "serial", t.Serial)
	return t, nil
}

// Update rewrites the registry fields of a tire. Status, vehicle binding
// and the recap counter are engine-owned and never touched here.
func (svc *TireService) Update(ctx context.Context, id string, req *dtos.TireReq) (*entities.Tire, error) {
	t, err := svc.byID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Serial != t.Serial {
		other, err := svc.tires.TireBySerial(ctx, req.Serial)
		if err != nil && !errors.Is(err, tire.ErrNotFound) {
			return nil, err
		}
		if other != nil && other.ID != t.ID {
			return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeSerialTaken,
				Field: "serial", Message: fmt.Sprintf("serial %s is already registered", req.Serial)}
		}
	}

	if err := applyTireReq(t, req); err != nil {
		return nil, err
	}
	if err := svc.tires.SaveTire(ctx, t); err != nil {
		return nil, mapStoreErr(err)
	}
	return t, nil
}

// ChangeStatus performs an off-vehicle lifecycle move: recap completion
// (in_recapping back to in_stock, bumping the recap counter) or scrapping
// from stock or the recapper.
func (svc *TireService) ChangeStatus(ctx context.Context, id string, to entities.TireStatus) (*entities.Tire, error) {
	t, err := svc.byID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := tire.PlanStatusChange(t, to)
	if err != nil {
		return nil, err
	}
	if err := svc.tires.SaveTire(ctx, updated); err != nil {
		return nil, mapStoreErr(err)
	}

	logging.Info("Tire status changed",
		"tire_id", id,
		"from", string(t.Status),
		"to", string(to),
		"recap_count", updated.RecapCount,
	)
	return updated, nil
}

// Get returns one tire by id.
func (svc *TireService) Get(ctx context.Context, id string) (*entities.Tire, error) {
	return svc.byID(ctx, id)
}

// List returns the whole registry.
func (svc *TireService) List(ctx context.Context) ([]entities.Tire, error) {
	return svc.tires.ListTires(ctx)
}

// Delete removes a tire from the registry. Mounted tires must be
// unassigned first so no vehicle position silently loses its record.
func (svc *TireService) Delete(ctx context.Context, id string) error {
	t, err := svc.byID(ctx, id)
	if err != nil {
		return err
	}
	if t.Mounted() {
		return &tire.Error{Kind: tire.KindValidation, Code: tire.CodeTireMounted,
			Message: fmt.Sprintf("tire %s is mounted on vehicle %s; unassign it first", t.Serial, *t.VehicleID)}
	}
	if err := svc.tires.DeleteTire(ctx, id); err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return svc.notFound(id)
		}
		return err
	}
	return nil
}

func (svc *TireService) byID(ctx context.Context, id string) (*entities.Tire, error) {
	t, err := svc.tires.TireByID(ctx, id)
	if err != nil {
		if errors.Is(err, tire.ErrNotFound) {
			return nil, svc.notFound(id)
		}
		return nil, err
	}
	return t, nil
}

func (svc *TireService) notFound(id string) error {
	return tire.NotFoundErr(tire.CodeTireNotFound, "tire %s not found", id)
}

func applyTireReq(t *entities.Tire, req *dtos.TireReq) error {
	expiresAt, err := parseDate(req.ExpiresAt, "expires_at")
	if err != nil {
		return err
	}
	purchasedAt, err := parseDate(req.PurchasedAt, "purchased_at")
	if err != nil {
		return err
	}

	t.Serial = req.Serial
	t.Manufacturer = req.Manufacturer
	t.Model = req.Model
	t.OriginalTread = req.OriginalTread
	t.CurrentTread = req.CurrentTread
	t.Dimension = req.Dimension
	t.Grooves = req.Grooves
	t.Plies = req.Plies
	t.DOTCode = req.DOTCode
	t.ExpiresAt = expiresAt
	t.InitialReading = req.InitialReading
	t.FinalReading = req.FinalReading
	t.Supplier = req.Supplier
	t.InvoiceNumber = req.InvoiceNumber
	t.InvoiceSeries = req.InvoiceSeries
	t.PurchasedAt = purchasedAt
	t.Cost = req.Cost
	t.Freight = req.Freight
	t.Incidentals = req.Incidentals
	return nil
}

func parseDate(raw, field string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, &tire.Error{Kind: tire.KindValidation, Code: tire.CodeBadField,
			Field: field, Message: fmt.Sprintf("%s must be YYYY-MM-DD", field)}
	}
	return &d, nil
}
