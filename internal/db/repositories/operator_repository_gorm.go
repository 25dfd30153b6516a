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

// OperatorRepositoryGORM handles operator account storage using GORM.
type OperatorRepositoryGORM struct {
	db *gorm.DB
}

func NewOperatorRepositoryGORM(db *gorm.DB) *OperatorRepositoryGORM {
	return &OperatorRepositoryGORM{db: db}
}

func (r *OperatorRepositoryGORM) GetByID(ctx context.Context, id string) (*gormModels.Operator, error) {
	var op gormModels.Operator

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&op).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tire.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch operator: %w", err)
	}

	return &op, nil
}

func (r *OperatorRepositoryGORM) GetByEmail(ctx context.Context, email string) (*gormModels.Operator, error) {
	var op gormModels.Operator

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&op).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tire.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch operator: %w", err)
	}

	return &op, nil
}

func (r *OperatorRepositoryGORM) List(ctx context.Context) ([]gormModels.Operator, error) {
	var ops []gormModels.Operator
	if err := r.db.WithContext(ctx).Order("name").Find(&ops).Error; err != nil {
		return nil, fmt.Errorf("failed to list operators: %w", err)
	}
	return ops, nil
}

func (r *OperatorRepositoryGORM) Create(ctx context.Context, op *gormModels.Operator) error {
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(op).Error; err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}

func (r *OperatorRepositoryGORM) Update(ctx context.Context, op *gormModels.Operator) error {
	if err := r.db.WithContext(ctx).Save(op).Error; err != nil {
		return fmt.Errorf("failed to update operator: %w", err)
	}
	return nil
}
