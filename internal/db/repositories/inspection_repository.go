package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	gormModels "rodacerta/frotagest/internal/models/gorm"
	"rodacerta/frotagest/internal/tire"
)

// InspectionRepository handles driver checklist submissions using GORM.
type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) GetByID(ctx context.Context, id string) (*gormModels.InspectionChecklist, error) {
	var insp gormModels.InspectionChecklist

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&insp).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tire.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch inspection: %w", err)
	}

	return &insp, nil
}

func (r *InspectionRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]gormModels.InspectionChecklist, error) {
	var insps []gormModels.InspectionChecklist
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date desc").
		Find(&insps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return insps, nil
}

func (r *InspectionRepository) Create(ctx context.Context, insp *gormModels.InspectionChecklist) error {
	if insp.ID == "" {
		insp.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(insp).Error; err != nil {
		return fmt.Errorf("failed to create inspection: %w", err)
	}
	return nil
}
