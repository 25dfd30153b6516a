package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"rodacerta/frotagest/internal/constants"
	"rodacerta/frotagest/internal/models/entities"
	"rodacerta/frotagest/internal/tire"
)

// TireRepository is the sqlx-backed implementation of tire.Store.
// Engine mutations run through InTx; every write is guarded by the
// record's version column so a lost race surfaces as ErrVersionConflict
// instead of silently overwriting.
type TireRepository struct {
	db *sqlx.DB
}

var _ tire.Store = (*TireRepository)(nil)

func NewTireRepository(db *sqlx.DB) *TireRepository {
	return &TireRepository{db}
}

func (r *TireRepository) InTx(ctx context.Context, fn func(tx tire.Tx) error) error {
	txx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(&tireTx{tx: txx}); err != nil {
		_ = txx.Rollback()
		return err
	}
	if err := txx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *TireRepository) TireByID(ctx context.Context, id string) (*entities.Tire, error) {
	return scanTire(r.db.QueryRowxContext(ctx, constants.GetTireByID, id))
}

func (r *TireRepository) TireBySerial(ctx context.Context, serial string) (*entities.Tire, error) {
	return scanTire(r.db.QueryRowxContext(ctx, constants.GetTireBySerial, serial))
}

func (r *TireRepository) TiresByVehicle(ctx context.Context, vehicleID string) ([]entities.Tire, error) {
	var tires []entities.Tire
	if err := r.db.SelectContext(ctx, &tires, constants.GetTiresByVehicle, vehicleID); err != nil {
		return nil, err
	}
	return tires, nil
}

func (r *TireRepository) TiresByStatus(ctx context.Context, statuses ...entities.TireStatus) ([]entities.Tire, error) {
	query, args, err := sqlx.In(`SELECT * FROM tires WHERE status IN (?) ORDER BY serial`, statuses)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var tires []entities.Tire
	if err := r.db.SelectContext(ctx, &tires, query, args...); err != nil {
		return nil, err
	}
	return tires, nil
}

func (r *TireRepository) ListTires(ctx context.Context) ([]entities.Tire, error) {
	var tires []entities.Tire
	if err := r.db.SelectContext(ctx, &tires, constants.ListTires); err != nil {
		return nil, err
	}
	return tires, nil
}

func (r *TireRepository) CreateTire(ctx context.Context, t *entities.Tire) error {
	rows, err := sqlx.NamedQueryContext(ctx, r.db, constants.InsertTire, t)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("insert tire %s: no row returned", t.Serial)
	}
	return rows.Scan(&t.CreatedAt, &t.UpdatedAt, &t.Version)
}

func (r *TireRepository) SaveTire(ctx context.Context, t *entities.Tire) error {
	return saveTire(ctx, r.db, t)
}

func (r *TireRepository) DeleteTire(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, constants.DeleteTire, id)
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

// tireTx is the transaction-scoped view handed to engine operations.
type tireTx struct {
	tx *sqlx.Tx
}

var _ tire.Tx = (*tireTx)(nil)

func (t *tireTx) TireByID(ctx context.Context, id string) (*entities.Tire, error) {
	return scanTire(t.tx.QueryRowxContext(ctx, constants.GetTireByIDForUpdate, id))
}

func (t *tireTx) TireAtPosition(ctx context.Context, vehicleID, position string) (*entities.Tire, error) {
	rec, err := scanTire(t.tx.QueryRowxContext(ctx, constants.GetTireAtPosition, vehicleID, position))
	if errors.Is(err, tire.ErrNotFound) {
		// empty slot, not an error
		return nil, nil
	}
	return rec, err
}

func (t *tireTx) SaveTire(ctx context.Context, rec *entities.Tire) error {
	return saveTire(ctx, t.tx, rec)
}

func saveTire(ctx context.Context, e sqlx.ExtContext, t *entities.Tire) error {
	res, err := sqlx.NamedExecContext(ctx, e, constants.UpdateTire, t)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return tire.ErrVersionConflict
	}
	t.Version++
	return nil
}

func scanTire(row *sqlx.Row) (*entities.Tire, error) {
	var t entities.Tire
	if err := row.StructScan(&t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tire.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
