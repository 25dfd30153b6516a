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

// FuelLogRepository handles refueling records using GORM.
type FuelLogRepository struct {
	db *gorm.DB
}

func NewFuelLogRepository(db *gorm.DB) *FuelLogRepository {
	return &FuelLogRepository{db: db}
}

func (r *FuelLogRepository) GetByID(ctx context.Context, id string) (*gormModels.FuelLog, error) {
	var log gormModels.FuelLog

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&log).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tire.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch fuel log: %w", err)
	}

	return &log, nil
}

func (r *FuelLogRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]gormModels.FuelLog, error) {
	var logs []gormModels.FuelLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("date").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel logs: %w", err)
	}
	return logs, nil
}

// ListByVehicleYear returns the vehicle's refuelings within one calendar
// year, ordered by date, for the consumption report.
func (r *FuelLogRepository) ListByVehicleYear(ctx context.Context, vehicleID string, year int) ([]gormModels.FuelLog, error) {
	var logs []gormModels.FuelLog
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND date >= ? AND date < ?",
			vehicleID,
			fmt.Sprintf("%04d-01-01", year),
			fmt.Sprintf("%04d-01-01", year+1)).
		Order("date").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list fuel logs for %d: %w", year, err)
	}
	return logs, nil
}

func (r *FuelLogRepository) Create(ctx context.Context, log *gormModels.FuelLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return fmt.Errorf("failed to create fuel log: %w", err)
	}
	return nil
}

func (r *FuelLogRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.FuelLog{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete fuel log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return tire.ErrNotFound
	}
	return nil
}
