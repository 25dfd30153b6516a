package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"rodacerta/frotagest/internal/constants"
	"rodacerta/frotagest/internal/models/entities"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.ApiKey, error) {
	var keyRes entities.ApiKey

	err := r.db.QueryRowxContext(ctx, constants.GetStatusByApiKey, key).StructScan(&keyRes)

	if err != nil {
		return nil, err
	}

	return &keyRes, nil
}

func (r *KeysRepo) List(ctx context.Context) ([]entities.ApiKey, error) {
	var keys []entities.ApiKey

	if err := r.db.SelectContext(ctx, &keys, constants.ListApiKeys); err != nil {
		return nil, err
	}

	return keys, nil
}

func (r *KeysRepo) Create(ctx context.Context, key, label string) (*entities.ApiKey, error) {
	var keyRes entities.ApiKey

	err := r.db.QueryRowxContext(ctx, constants.InsertApiKey, key, label).StructScan(&keyRes)

	if err != nil {
		return nil, err
	}

	return &keyRes, nil
}

func (r *KeysRepo) SetStatus(ctx context.Context, key string, active bool) error {
	res, err := r.db.ExecContext(ctx, constants.SetApiKeyStatus, key, active)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
