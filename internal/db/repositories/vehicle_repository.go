package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"rodacerta/frotagest/internal/constants"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

type VehicleRepository struct {
	db *sqlx.DB
}

func NewVehicleRepository(db *sqlx.DB) *VehicleRepository {
	return &VehicleRepository{db}
}

func (r *VehicleRepository) VehicleByID(ctx context.Context, id string) (*entities.Vehicle, error) {
	var v entities.Vehicle
	if err := r.db.QueryRowxContext(ctx, constants.GetVehicleByID, id).StructScan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tire.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) VehicleByPlate(ctx context.Context, plate string) (*entities.Vehicle, error) {
	var v entities.Vehicle
	if err := r.db.QueryRowxContext(ctx, constants.GetVehicleByPlate, plate).StructScan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tire.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VehicleRepository) ListVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	var vehicles []entities.Vehicle
	if err := r.db.SelectContext(ctx, &vehicles, constants.ListVehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) CreateVehicle(ctx context.Context, v *entities.Vehicle) error {
	rows, err := sqlx.NamedQueryContext(ctx, r.db, constants.InsertVehicle, v)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return errors.New("insert vehicle: no row returned")
	}
	return rows.Scan(&v.CreatedAt, &v.UpdatedAt)
}

func (r *VehicleRepository) UpdateVehicle(ctx context.Context, v *entities.Vehicle) error {
	res, err := sqlx.NamedExecContext(ctx, r.db, constants.UpdateVehicle, v)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return tire.ErrNotFound
	}
	return nil
}
