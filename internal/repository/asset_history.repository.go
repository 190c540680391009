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

type AssetHistoryRepository interface {
	Get(id uuid.UUID) (*model.AssetHistory, error)
	List() ([]model.AssetHistory, error)
	// UpsertForDate writes the daily total for the given date,
	// inserting or overwriting the single row keyed on recorded_date.
	UpsertForDate(tx *sql.Tx, totalAmount int64, date time.Time) (*model.AssetHistory, error)
	Update(in UpdateAssetHistoryInput) (*model.AssetHistory, error)
	Delete(id uuid.UUID) error
}

type UpdateAssetHistoryInput struct {
	AssetHistoryID uuid.UUID
	TotalAmount    int64
	RecordedDate   *time.Time
}

type assetHistoryRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetHistoryRepository(db *sql.DB) AssetHistoryRepository {
	return assetHistoryRepositoryHandler{Db: db}
}

func (h assetHistoryRepositoryHandler) Get(id uuid.UUID) (*model.AssetHistory, error) {
	query := table.AssetHistory.
		SELECT(table.AssetHistory.AllColumns).
		WHERE(table.AssetHistory.AssetHistoryID.EQ(postgres.UUID(id)))

	result := model.AssetHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset history: %w", err)
	}

	return &result, nil
}

func (h assetHistoryRepositoryHandler) List() ([]model.AssetHistory, error) {
	query := table.AssetHistory.
		SELECT(table.AssetHistory.AllColumns).
		ORDER_BY(table.AssetHistory.RecordedDate.ASC())

	result := []model.AssetHistory{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset history: %w", err)
	}

	return result, nil
}

func (h assetHistoryRepositoryHandler) UpsertForDate(tx *sql.Tx, totalAmount int64, date time.Time) (*model.AssetHistory, error) {
	query := table.AssetHistory.
		INSERT(table.AssetHistory.MutableColumns).
		MODEL(model.AssetHistory{
			TotalAmount:  totalAmount,
			RecordedDate: date,
		}).
		ON_CONFLICT(table.AssetHistory.RecordedDate).DO_UPDATE(
		postgres.SET(
			table.AssetHistory.TotalAmount.SET(table.AssetHistory.EXCLUDED.TotalAmount),
		),
	).RETURNING(table.AssetHistory.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}
	out := model.AssetHistory{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert asset history: %w", err)
	}

	return &out, nil
}

func (h assetHistoryRepositoryHandler) Update(in UpdateAssetHistoryInput) (*model.AssetHistory, error) {
	columns := postgres.ColumnList{table.AssetHistory.TotalAmount}
	m := model.AssetHistory{
		TotalAmount: in.TotalAmount,
	}
	if in.RecordedDate != nil {
		columns = append(columns, table.AssetHistory.RecordedDate)
		m.RecordedDate = *in.RecordedDate
	}

	query := table.AssetHistory.
		UPDATE(columns).
		MODEL(m).
		WHERE(table.AssetHistory.AssetHistoryID.EQ(postgres.UUID(in.AssetHistoryID))).
		RETURNING(table.AssetHistory.AllColumns)

	out := model.AssetHistory{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update asset history: %w", err)
	}

	return &out, nil
}

func (h assetHistoryRepositoryHandler) Delete(id uuid.UUID) error {
	query := table.AssetHistory.
		DELETE().
		WHERE(table.AssetHistory.AssetHistoryID.EQ(postgres.UUID(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete asset history: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete asset history: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to delete asset history %s: %w", id, qrm.ErrNoRows)
	}

	return nil
}
