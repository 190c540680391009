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

type ThoughtRepository interface {
	Add(t model.Thought) (*model.Thought, error)
	Get(id uuid.UUID) (*model.Thought, error)
	List() ([]model.Thought, error)
	UpdateContent(id uuid.UUID, content string) (*model.Thought, error)
	// Delete removes the row; the parent_id foreign key is declared
	// ON DELETE CASCADE, so the whole subtree goes with it.
	Delete(id uuid.UUID) error
}

type thoughtRepositoryHandler struct {
	Db *sql.DB
}

func NewThoughtRepository(db *sql.DB) ThoughtRepository {
	return thoughtRepositoryHandler{Db: db}
}

func (h thoughtRepositoryHandler) Add(t model.Thought) (*model.Thought, error) {
	t.CreatedAt = time.Now().UTC()
	query := table.Thought.
		INSERT(table.Thought.MutableColumns).
		MODEL(t).
		RETURNING(table.Thought.AllColumns)

	out := model.Thought{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert thought: %w", err)
	}

	return &out, nil
}

func (h thoughtRepositoryHandler) Get(id uuid.UUID) (*model.Thought, error) {
	query := table.Thought.
		SELECT(table.Thought.AllColumns).
		WHERE(table.Thought.ThoughtID.EQ(postgres.UUID(id)))

	result := model.Thought{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get thought: %w", err)
	}

	return &result, nil
}

func (h thoughtRepositoryHandler) List() ([]model.Thought, error) {
	query := table.Thought.
		SELECT(table.Thought.AllColumns).
		ORDER_BY(table.Thought.CreatedAt.ASC())

	result := []model.Thought{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list thoughts: %w", err)
	}

	return result, nil
}

func (h thoughtRepositoryHandler) UpdateContent(id uuid.UUID, content string) (*model.Thought, error) {
	query := table.Thought.
		UPDATE(table.Thought.Content).
		SET(postgres.String(content)).
		WHERE(table.Thought.ThoughtID.EQ(postgres.UUID(id))).
		RETURNING(table.Thought.AllColumns)

	out := model.Thought{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to update thought: %w", err)
	}

	return &out, nil
}

func (h thoughtRepositoryHandler) Delete(id uuid.UUID) error {
	query := table.Thought.
		DELETE().
		WHERE(table.Thought.ThoughtID.EQ(postgres.UUID(id)))

	result, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to delete thought: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete thought: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to delete thought %s: %w", id, qrm.ErrNoRows)
	}

	return nil
}
