package repository

import (
	"database/sql"
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AssetRepository interface {
	Add(tx *sql.Tx, a model.Asset) (*model.Asset, error)
	Get(id uuid.UUID) (*model.Asset, error)
	List(tx *sql.Tx) ([]model.Asset, error)
	Update(tx *sql.Tx, a model.Asset) (*model.Asset, error)
	Delete(tx *sql.Tx, id uuid.UUID) error
}

type assetRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return assetRepositoryHandler{Db: db}
}

func (h assetRepositoryHandler) Add(tx *sql.Tx, a model.Asset) (*model.Asset, error) {
	a.CreatedAt = time.Now().UTC()
	query := table.Asset.
		INSERT(table.Asset.MutableColumns).
		MODEL(a).
		RETURNING(table.Asset.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Asset{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert asset: %w", err)
	}

	return &out, nil
}

func (h assetRepositoryHandler) Get(id uuid.UUID) (*model.Asset, error) {
	query := table.Asset.
		SELECT(table.Asset.AllColumns).
		WHERE(table.Asset.AssetID.EQ(postgres.UUID(id)))

	result := model.Asset{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &result, nil
}

func (h assetRepositoryHandler) List(tx *sql.Tx) ([]model.Asset, error) {
	query := table.Asset.
		SELECT(table.Asset.AllColumns).
		ORDER_BY(table.Asset.CreatedAt.ASC())

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	result := []model.Asset{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	return result, nil
}

func (h assetRepositoryHandler) Update(tx *sql.Tx, a model.Asset) (*model.Asset, error) {
	query := table.Asset.
		UPDATE(table.Asset.MutableColumns).
		MODEL(a).
		WHERE(table.Asset.AssetID.EQ(postgres.UUID(a.AssetID))).
		RETURNING(table.Asset.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.Asset{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &out, nil
}

func (h assetRepositoryHandler) Delete(tx *sql.Tx, id uuid.UUID) error {
	query := table.Asset.
		DELETE().
		WHERE(table.Asset.AssetID.EQ(postgres.UUID(id)))

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}
	result, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to delete asset %s: %w", id, qrm.ErrNoRows)
	}

	return nil
}
