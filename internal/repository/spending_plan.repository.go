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

type SpendingPlanRepository interface {
	Add(sp model.SpendingPlan) (*model.SpendingPlan, error)
	Get(id uuid.UUID) (*model.SpendingPlan, error)
	List() ([]model.SpendingPlan, error)
	Update(sp model.SpendingPlan) (*model.SpendingPlan, error)
	Delete(id uuid.UUID) error
}

type spendingPlanRepositoryHandler struct {
	Db *sql.DB
}

func NewSpendingPlanRepository(db *sql.DB) SpendingPlanRepository {
	return spendingPlanRepositoryHandler{Db: db}
}

func (h spendingPlanRepositoryHandler) Add(sp model.SpendingPlan) (*model.SpendingPlan, error) {
	sp.CreatedAt = time.Now().UTC()
	query := table.SpendingPlan.
		INSERT(table.SpendingPlan.MutableColumns).
		MODEL(sp).
		RETURNING(table.SpendingPlan.AllColumns)

	out := model.SpendingPlan{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert spending plan: %w", err)
	}

	return &out, nil
}

func (h spendingPlanRepositoryHandler) Get(id uuid.UUID) (*model.SpendingPlan, error) {
	query := table.SpendingPlan.
		SELECT(table.SpendingPlan.AllColumns).
		WHERE(table.SpendingPlan.SpendingPlanID.EQ(postgres.UUID(id)))

	result := model.SpendingPlan{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get spending plan: %w", err)
	}

	return &result, nil
}

func (h spendingPlanRepositoryHandler) List() ([]model.SpendingPlan, error) {
	query := table.SpendingPlan.
		SELECT(table.SpendingPlan.AllColumns).
		ORDER_BY(table.SpendingPlan.DueDate.ASC())

	result := []model.SpendingPlan{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list spending plans: %w", err)
	}

	return result, nil
}

func (h spendingPlanRepositoryHandler) Update(sp model.SpendingPlan) (*model.SpendingPlan, error) {
	query := table.SpendingPlan.
		UPDATE(
			table.SpendingPlan.Title,
			table.SpendingPlan.Amount,
			table.SpendingPlan.DueDate,
			table.SpendingPlan.Description,
			table.SpendingPlan.IsPaid,
		).
		MODEL(sp).
		WHERE(table.SpendingPlan.SpendingPlanID.EQ(postgres.UUID(sp.SpendingPlanID))).
		RETURNING(table.SpendingPlan.AllColumns)

	out := model.SpendingPlan{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update spending plan: %w", err)
	}

	return &out, nil
}

func (h spendingPlanRepositoryHandler) Delete(id uuid.UUID) error {
	query := table.SpendingPlan.
		DELETE().
		WHERE(table.SpendingPlan.SpendingPlanID.EQ(postgres.UUID(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete spending plan: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete spending plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to delete spending plan %s: %w", id, qrm.ErrNoRows)
	}

	return nil
}
