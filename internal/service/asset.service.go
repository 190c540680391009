package service

import (
	"database/sql"
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/repository"
	"nestegg/internal/util"

	"github.com/google/uuid"
)

// LoanCategory is the only liability-signed category: its amounts are
// subtracted from the daily total. Categories are otherwise free text.
const LoanCategory = "LOAN"

// Commonly used categories. Not an enforced enum.
const (
	CategorySavings     = "SAVINGS"
	CategoryInstallment = "INSTALLMENT"
	CategoryStock       = "STOCK"
	CategoryCrypto      = "CRYPTO"
	CategoryRealEstate  = "REAL_ESTATE"
)

// txRunner owns the transaction boundary so mutation flows can run
// against a fake boundary in tests without a live database.
type txRunner interface {
	inTx(fn func(tx *sql.Tx) error) error
}

type dbTxRunner struct {
	Db *sql.DB
}

func (r dbTxRunner) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type CreateAssetInput struct {
	Name        string
	Amount      *int64
	Category    string
	Platform    *string
	Description *string
}

type UpdateAssetInput struct {
	Name        string
	Amount      int64
	Category    string
	Platform    *string
	Description *string
}

type AssetService interface {
	Create(in CreateAssetInput) (*model.Asset, error)
	List() ([]model.Asset, error)
	Update(id uuid.UUID, in UpdateAssetInput) (*model.Asset, error)
	Delete(id uuid.UUID) error

	History() ([]model.AssetHistory, error)
	UpdateHistory(in repository.UpdateAssetHistoryInput) (*model.AssetHistory, error)
	DeleteHistory(id uuid.UUID) error
	ItemHistory(assetID uuid.UUID) ([]model.AssetItemHistory, error)

	RecomputeDailyTotal() (*model.AssetHistory, error)
}

func NewAssetService(
	db *sql.DB,
	assetRepository repository.AssetRepository,
	historyRepository repository.AssetHistoryRepository,
	itemHistoryRepository repository.AssetItemHistoryRepository,
	clock util.Clock,
) AssetService {
	return assetServiceHandler{
		Tx:                    dbTxRunner{Db: db},
		AssetRepository:       assetRepository,
		HistoryRepository:     historyRepository,
		ItemHistoryRepository: itemHistoryRepository,
		Clock:                 clock,
	}
}

type assetServiceHandler struct {
	Tx                    txRunner
	AssetRepository       repository.AssetRepository
	HistoryRepository     repository.AssetHistoryRepository
	ItemHistoryRepository repository.AssetItemHistoryRepository
	Clock                 util.Clock
}

func (h assetServiceHandler) Create(in CreateAssetInput) (*model.Asset, error) {
	amount := int64(0)
	if in.Amount != nil {
		amount = *in.Amount
	}

	var saved *model.Asset
	err := h.Tx.inTx(func(tx *sql.Tx) error {
		out, err := h.AssetRepository.Add(tx, model.Asset{
			Name:        in.Name,
			Amount:      amount,
			Category:    in.Category,
			Platform:    in.Platform,
			Description: in.Description,
		})
		if err != nil {
			return err
		}
		saved = out

		if _, err := h.recomputeDailyTotal(tx); err != nil {
			return err
		}
		return h.recordItemSnapshot(tx, *saved)
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

func (h assetServiceHandler) List() ([]model.Asset, error) {
	return h.AssetRepository.List(nil)
}

func (h assetServiceHandler) Update(id uuid.UUID, in UpdateAssetInput) (*model.Asset, error) {
	existing, err := h.AssetRepository.Get(id)
	if err != nil {
		return nil, err
	}

	applied := applyAssetUpdate(*existing, in)

	var updated *model.Asset
	err = h.Tx.inTx(func(tx *sql.Tx) error {
		out, err := h.AssetRepository.Update(tx, applied)
		if err != nil {
			return err
		}
		updated = out

		if _, err := h.recomputeDailyTotal(tx); err != nil {
			return err
		}
		return h.recordItemSnapshot(tx, *updated)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (h assetServiceHandler) Delete(id uuid.UUID) error {
	return h.Tx.inTx(func(tx *sql.Tx) error {
		if err := h.AssetRepository.Delete(tx, id); err != nil {
			return err
		}

		// no item snapshot on delete - the asset's trail is retained as-is
		_, err := h.recomputeDailyTotal(tx)
		return err
	})
}

func (h assetServiceHandler) History() ([]model.AssetHistory, error) {
	return h.HistoryRepository.List()
}

func (h assetServiceHandler) UpdateHistory(in repository.UpdateAssetHistoryInput) (*model.AssetHistory, error) {
	return h.HistoryRepository.Update(in)
}

func (h assetServiceHandler) DeleteHistory(id uuid.UUID) error {
	return h.HistoryRepository.Delete(id)
}

func (h assetServiceHandler) ItemHistory(assetID uuid.UUID) ([]model.AssetItemHistory, error) {
	return h.ItemHistoryRepository.ListByAsset(assetID)
}

// RecomputeDailyTotal recomputes and upserts today's total outside of any
// asset mutation, for the backfill script.
func (h assetServiceHandler) RecomputeDailyTotal() (*model.AssetHistory, error) {
	var out *model.AssetHistory
	err := h.Tx.inTx(func(tx *sql.Tx) error {
		var err error
		out, err = h.recomputeDailyTotal(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// applyAssetUpdate overwrites the mutable fields, copying the old amount
// into PreviousAmount first when the amount actually changed.
func applyAssetUpdate(existing model.Asset, in UpdateAssetInput) model.Asset {
	if existing.Amount != in.Amount {
		existing.PreviousAmount = existing.Amount
	}
	existing.Name = in.Name
	existing.Amount = in.Amount
	existing.Category = in.Category
	existing.Platform = in.Platform
	existing.Description = in.Description
	return existing
}

// computeDailyTotal sums the asset set, subtracting LOAN amounts. The
// result is signed and goes negative when liabilities dominate.
func computeDailyTotal(assets []model.Asset) int64 {
	var total int64
	for _, a := range assets {
		if a.Category == LoanCategory {
			total -= a.Amount
		} else {
			total += a.Amount
		}
	}
	return total
}

// recomputeDailyTotal recomputes from the full current asset set and
// writes the single row for today's date. The write is a computed value,
// not a delta, so concurrent same-day recomputes converge once the store
// serializes them.
func (h assetServiceHandler) recomputeDailyTotal(tx *sql.Tx) (*model.AssetHistory, error) {
	assets, err := h.AssetRepository.List(tx)
	if err != nil {
		return nil, err
	}

	return h.HistoryRepository.UpsertForDate(tx, computeDailyTotal(assets), h.Clock.Today())
}

// recordItemSnapshot appends one audit row per mutation; same-day edits
// stack up rather than overwrite.
func (h assetServiceHandler) recordItemSnapshot(tx *sql.Tx, a model.Asset) error {
	_, err := h.ItemHistoryRepository.Add(tx, model.AssetItemHistory{
		AssetID:      a.AssetID,
		Amount:       a.Amount,
		RecordedDate: h.Clock.Today(),
	})
	if err != nil {
		return fmt.Errorf("failed to record item snapshot for asset %s: %w", a.AssetID, err)
	}

	return nil
}
