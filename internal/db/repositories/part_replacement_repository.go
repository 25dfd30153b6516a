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

// PartReplacementRepository handles part-replacement records using GORM.
type PartReplacementRepository struct {
	db *gorm.DB
}

func NewPartReplacementRepository(db *gorm.DB) *PartReplacementRepository {
	return &PartReplacementRepository{db: db}
}

func (r *PartReplacementRepository) GetByID(ctx context.Context, id string) (*gormModels.PartReplacement, error) {
	var part gormModels.PartReplacement

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&part).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tire.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch part replacement: %w", err)
	}

	return &part, nil
}

func (r *PartReplacementRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]gormModels.PartReplacement, error) {
	var parts []gormModels.PartReplacement
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date desc").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list part replacements: %w", err)
	}
	return parts, nil
}

func (r *PartReplacementRepository) Create(ctx context.Context, part *gormModels.PartReplacement) error {
	if part.ID == "" {
		part.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(part).Error; err != nil {
		return fmt.Errorf("failed to create part replacement: %w", err)
	}
	return nil
}

func (r *PartReplacementRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.PartReplacement{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete part replacement: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return tire.ErrNotFound
	}
	return nil
}
