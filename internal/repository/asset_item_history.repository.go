package repository

import (
	"database/sql"
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// AssetItemHistoryRepository is append-only: every asset mutation adds a
// row, same-day duplicates included.
type AssetItemHistoryRepository interface {
	Add(tx *sql.Tx, ih model.AssetItemHistory) (*model.AssetItemHistory, error)
	ListByAsset(assetID uuid.UUID) ([]model.AssetItemHistory, error)
}

type assetItemHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetItemHistoryRepository(db *sql.DB) AssetItemHistoryRepository {
	return assetItemHistoryRepositoryHandler{Db: db}
}

func (h assetItemHistoryRepositoryHandler) Add(tx *sql.Tx, ih model.AssetItemHistory) (*model.AssetItemHistory, error) {
	query := table.AssetItemHistory.
		INSERT(table.AssetItemHistory.MutableColumns).
		MODEL(ih).
		RETURNING(table.AssetItemHistory.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.AssetItemHistory{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert asset item history: %w", err)
	}

	return &out, nil
}

func (h assetItemHistoryRepositoryHandler) ListByAsset(assetID uuid.UUID) ([]model.AssetItemHistory, error) {
	query := table.AssetItemHistory.
		SELECT(table.AssetItemHistory.AllColumns).
		WHERE(table.AssetItemHistory.AssetID.EQ(postgres.UUID(assetID))).
		ORDER_BY(table.AssetItemHistory.RecordedDate.DESC())

	result := []model.AssetItemHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset item history for %s: %w", assetID, err)
	}

	return result, nil
}
