package repositories

import (
	"context"

	"flightline/opsdeck/internal/constants"
	"flightline/opsdeck/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

type KeysRepo struct {
	db *sqlx.DB
}

func NewApiKeysRepo(db *sqlx.DB) *KeysRepo {
	return &KeysRepo{db}
}

func (r *KeysRepo) GetStatus(ctx context.Context, key string) (*entities.APIKeyStatus, error) {
	var keyRes entities.APIKeyStatus

	err := r.db.QueryRowxContext(ctx, constants.GetAPIKeyStatus, key).StructScan(&keyRes)

	if err != nil {
		return nil, err
	}

	return &keyRes, nil
}

func (r *KeysRepo) Insert(ctx context.Context, key, userID string) (*entities.APIKey, error) {
	rec := entities.APIKey{Key: key, UserID: userID, IsActive: true}

	err := r.db.QueryRowxContext(ctx, constants.InsertAPIKey, key, userID).
		Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}
