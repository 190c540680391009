package service

import (
	"database/sql"
	"nestegg/internal/db/models/postgres/public/model"
	mock_repository "nestegg/internal/repository/mocks"
	"nestegg/internal/util"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// passthroughTx runs the flow with no live transaction; the repositories
// fall back to their own connection when tx is nil.
type passthroughTx struct{}

func (passthroughTx) inTx(fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

func Test_computeDailyTotal(t *testing.T) {
	tests := []struct {
		name   string
		assets []model.Asset
		want   int64
	}{
		{
			name:   "no assets",
			assets: []model.Asset{},
			want:   0,
		},
		{
			name: "savings plus loan",
			assets: []model.Asset{
				{Category: CategorySavings, Amount: 1000},
				{Category: LoanCategory, Amount: 300},
			},
			want: 700,
		},
		{
			name: "liabilities dominate",
			assets: []model.Asset{
				{Category: CategoryStock, Amount: 100},
				{Category: LoanCategory, Amount: 500},
			},
			want: -400,
		},
		{
			name: "unknown categories count positive",
			assets: []model.Asset{
				{Category: "WINE_CELLAR", Amount: 50},
				{Category: CategoryCrypto, Amount: 25},
			},
			want: 75,
		},
		{
			name: "zero amounts are inert",
			assets: []model.Asset{
				{Category: CategorySavings, Amount: 0},
				{Category: LoanCategory, Amount: 0},
				{Category: CategoryRealEstate, Amount: 10},
			},
			want: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, computeDailyTotal(tt.assets))
		})
	}
}

func Test_applyAssetUpdate(t *testing.T) {
	t.Run("changed amount backs up the old one", func(t *testing.T) {
		existing := model.Asset{
			Name:           "index fund",
			Amount:         100,
			PreviousAmount: 0,
			Category:       CategoryStock,
		}

		out := applyAssetUpdate(existing, UpdateAssetInput{
			Name:     "index fund",
			Amount:   150,
			Category: CategoryStock,
		})

		require.Equal(t, int64(150), out.Amount)
		require.Equal(t, int64(100), out.PreviousAmount)
	})

	t.Run("unchanged amount leaves previous alone", func(t *testing.T) {
		existing := model.Asset{
			Name:           "savings",
			Amount:         100,
			PreviousAmount: 40,
			Category:       CategorySavings,
		}

		out := applyAssetUpdate(existing, UpdateAssetInput{
			Name:     "renamed savings",
			Amount:   100,
			Category: CategorySavings,
		})

		require.Equal(t, int64(100), out.Amount)
		require.Equal(t, int64(40), out.PreviousAmount)
		require.Equal(t, "renamed savings", out.Name)
	})

	t.Run("overwrites all mutable fields", func(t *testing.T) {
		platform := "broker"
		description := "rebalanced"
		out := applyAssetUpdate(model.Asset{Amount: 10}, UpdateAssetInput{
			Name:        "etf",
			Amount:      20,
			Category:    CategoryStock,
			Platform:    &platform,
			Description: &description,
		})

		require.Equal(t, "etf", out.Name)
		require.Equal(t, CategoryStock, out.Category)
		require.Equal(t, &platform, out.Platform)
		require.Equal(t, &description, out.Description)
	})
}

func Test_recomputeDailyTotal(t *testing.T) {
	today := util.NewDate(2025, 3, 1)

	t.Run("writes the signed total for today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)

		handler := assetServiceHandler{
			AssetRepository:   assetRepository,
			HistoryRepository: historyRepository,
			Clock:             util.FrozenClock{Date: today},
		}

		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{
				{Category: CategorySavings, Amount: 1000},
				{Category: LoanCategory, Amount: 300},
			}, nil)

		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(700), today).
			Return(&model.AssetHistory{
				AssetHistoryID: uuid.New(),
				TotalAmount:    700,
				RecordedDate:   today,
			}, nil)

		out, err := handler.recomputeDailyTotal(nil)
		require.NoError(t, err)
		require.Equal(t, int64(700), out.TotalAmount)
	})

	t.Run("repeat recompute targets the same date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)

		handler := assetServiceHandler{
			AssetRepository:   assetRepository,
			HistoryRepository: historyRepository,
			Clock:             util.FrozenClock{Date: today},
		}

		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{{Category: CategorySavings, Amount: 500}}, nil).
			Times(2)

		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(500), today).
			Return(&model.AssetHistory{TotalAmount: 500, RecordedDate: today}, nil).
			Times(2)

		_, err := handler.recomputeDailyTotal(nil)
		require.NoError(t, err)
		_, err = handler.recomputeDailyTotal(nil)
		require.NoError(t, err)
	})
}

func Test_recordItemSnapshot(t *testing.T) {
	today := util.NewDate(2025, 3, 1)
	assetID := uuid.New()

	ctrl := gomock.NewController(t)
	itemHistoryRepository := mock_repository.NewMockAssetItemHistoryRepository(ctrl)

	handler := assetServiceHandler{
		ItemHistoryRepository: itemHistoryRepository,
		Clock:                 util.FrozenClock{Date: today},
	}

	itemHistoryRepository.EXPECT().
		Add(gomock.Nil(), model.AssetItemHistory{
			AssetID:      assetID,
			Amount:       150,
			RecordedDate: today,
		}).
		Return(&model.AssetItemHistory{}, nil)

	err := handler.recordItemSnapshot(nil, model.Asset{
		AssetID:  assetID,
		Amount:   150,
		Category: CategoryStock,
	})
	require.NoError(t, err)
}

func Test_CreateAsset(t *testing.T) {
	today := util.NewDate(2025, 3, 1)

	t.Run("appends exactly one audit row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)
		itemHistoryRepository := mock_repository.NewMockAssetItemHistoryRepository(ctrl)

		handler := assetServiceHandler{
			Tx:                    passthroughTx{},
			AssetRepository:       assetRepository,
			HistoryRepository:     historyRepository,
			ItemHistoryRepository: itemHistoryRepository,
			Clock:                 util.FrozenClock{Date: today},
		}

		assetID := uuid.New()
		amount := int64(100)

		assetRepository.EXPECT().
			Add(gomock.Nil(), model.Asset{
				Name:     "index fund",
				Amount:   100,
				Category: CategoryStock,
			}).
			Return(&model.Asset{
				AssetID:  assetID,
				Name:     "index fund",
				Amount:   100,
				Category: CategoryStock,
			}, nil)

		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{
				{AssetID: assetID, Name: "index fund", Amount: 100, Category: CategoryStock},
			}, nil)

		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(100), today).
			Return(&model.AssetHistory{TotalAmount: 100, RecordedDate: today}, nil)

		itemHistoryRepository.EXPECT().
			Add(gomock.Nil(), model.AssetItemHistory{
				AssetID:      assetID,
				Amount:       100,
				RecordedDate: today,
			}).
			Return(&model.AssetItemHistory{}, nil)

		out, err := handler.Create(CreateAssetInput{
			Name:     "index fund",
			Amount:   &amount,
			Category: CategoryStock,
		})
		require.NoError(t, err)
		require.Equal(t, assetID, out.AssetID)
		require.Equal(t, int64(100), out.Amount)
	})

	t.Run("nil amount defaults to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)
		itemHistoryRepository := mock_repository.NewMockAssetItemHistoryRepository(ctrl)

		handler := assetServiceHandler{
			Tx:                    passthroughTx{},
			AssetRepository:       assetRepository,
			HistoryRepository:     historyRepository,
			ItemHistoryRepository: itemHistoryRepository,
			Clock:                 util.FrozenClock{Date: today},
		}

		assetID := uuid.New()

		assetRepository.EXPECT().
			Add(gomock.Nil(), model.Asset{
				Name:     "empty jar",
				Category: CategorySavings,
			}).
			Return(&model.Asset{AssetID: assetID, Name: "empty jar", Category: CategorySavings}, nil)

		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{{AssetID: assetID, Category: CategorySavings}}, nil)

		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(0), today).
			Return(&model.AssetHistory{RecordedDate: today}, nil)

		itemHistoryRepository.EXPECT().
			Add(gomock.Nil(), model.AssetItemHistory{
				AssetID:      assetID,
				RecordedDate: today,
			}).
			Return(&model.AssetItemHistory{}, nil)

		out, err := handler.Create(CreateAssetInput{
			Name:     "empty jar",
			Category: CategorySavings,
		})
		require.NoError(t, err)
		require.Equal(t, int64(0), out.Amount)
	})
}

func Test_UpdateAsset(t *testing.T) {
	today := util.NewDate(2025, 3, 1)

	t.Run("raising 100 to 150 backs up the old amount and snapshots the new", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)
		itemHistoryRepository := mock_repository.NewMockAssetItemHistoryRepository(ctrl)

		handler := assetServiceHandler{
			Tx:                    passthroughTx{},
			AssetRepository:       assetRepository,
			HistoryRepository:     historyRepository,
			ItemHistoryRepository: itemHistoryRepository,
			Clock:                 util.FrozenClock{Date: today},
		}

		assetID := uuid.New()

		assetRepository.EXPECT().
			Get(assetID).
			Return(&model.Asset{
				AssetID:  assetID,
				Name:     "index fund",
				Amount:   100,
				Category: CategoryStock,
			}, nil)

		assetRepository.EXPECT().
			Update(gomock.Nil(), model.Asset{
				AssetID:        assetID,
				Name:           "index fund",
				Amount:         150,
				PreviousAmount: 100,
				Category:       CategoryStock,
			}).
			Return(&model.Asset{
				AssetID:        assetID,
				Name:           "index fund",
				Amount:         150,
				PreviousAmount: 100,
				Category:       CategoryStock,
			}, nil)

		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{
				{AssetID: assetID, Amount: 150, Category: CategoryStock},
			}, nil)

		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(150), today).
			Return(&model.AssetHistory{TotalAmount: 150, RecordedDate: today}, nil)

		itemHistoryRepository.EXPECT().
			Add(gomock.Nil(), model.AssetItemHistory{
				AssetID:      assetID,
				Amount:       150,
				RecordedDate: today,
			}).
			Return(&model.AssetItemHistory{}, nil)

		out, err := handler.Update(assetID, UpdateAssetInput{
			Name:     "index fund",
			Amount:   150,
			Category: CategoryStock,
		})
		require.NoError(t, err)
		require.Equal(t, int64(150), out.Amount)
		require.Equal(t, int64(100), out.PreviousAmount)
	})

	t.Run("create then update stacks two audit rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assetRepository := mock_repository.NewMockAssetRepository(ctrl)
		historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)
		itemHistoryRepository := mock_repository.NewMockAssetItemHistoryRepository(ctrl)

		handler := assetServiceHandler{
			Tx:                    passthroughTx{},
			AssetRepository:       assetRepository,
			HistoryRepository:     historyRepository,
			ItemHistoryRepository: itemHistoryRepository,
			Clock:                 util.FrozenClock{Date: today},
		}

		assetID := uuid.New()
		amount := int64(100)

		assetRepository.EXPECT().
			Add(gomock.Nil(), gomock.Any()).
			Return(&model.Asset{AssetID: assetID, Name: "index fund", Amount: 100, Category: CategoryStock}, nil)
		assetRepository.EXPECT().
			Get(assetID).
			Return(&model.Asset{AssetID: assetID, Name: "index fund", Amount: 100, Category: CategoryStock}, nil)
		assetRepository.EXPECT().
			Update(gomock.Nil(), gomock.Any()).
			Return(&model.Asset{AssetID: assetID, Name: "index fund", Amount: 150, PreviousAmount: 100, Category: CategoryStock}, nil)
		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{{AssetID: assetID, Amount: 100, Category: CategoryStock}}, nil)
		assetRepository.EXPECT().
			List(gomock.Nil()).
			Return([]model.Asset{{AssetID: assetID, Amount: 150, Category: CategoryStock}}, nil)

		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(100), today).
			Return(&model.AssetHistory{TotalAmount: 100, RecordedDate: today}, nil)
		historyRepository.EXPECT().
			UpsertForDate(gomock.Nil(), int64(150), today).
			Return(&model.AssetHistory{TotalAmount: 150, RecordedDate: today}, nil)

		gomock.InOrder(
			itemHistoryRepository.EXPECT().
				Add(gomock.Nil(), model.AssetItemHistory{AssetID: assetID, Amount: 100, RecordedDate: today}).
				Return(&model.AssetItemHistory{}, nil),
			itemHistoryRepository.EXPECT().
				Add(gomock.Nil(), model.AssetItemHistory{AssetID: assetID, Amount: 150, RecordedDate: today}).
				Return(&model.AssetItemHistory{}, nil),
		)

		_, err := handler.Create(CreateAssetInput{
			Name:     "index fund",
			Amount:   &amount,
			Category: CategoryStock,
		})
		require.NoError(t, err)

		out, err := handler.Update(assetID, UpdateAssetInput{
			Name:     "index fund",
			Amount:   150,
			Category: CategoryStock,
		})
		require.NoError(t, err)
		require.Equal(t, int64(100), out.PreviousAmount)
	})
}

func Test_DeleteAsset(t *testing.T) {
	today := util.NewDate(2025, 3, 1)

	ctrl := gomock.NewController(t)
	assetRepository := mock_repository.NewMockAssetRepository(ctrl)
	historyRepository := mock_repository.NewMockAssetHistoryRepository(ctrl)
	// no expectations: any audit write on delete fails the test
	itemHistoryRepository := mock_repository.NewMockAssetItemHistoryRepository(ctrl)

	handler := assetServiceHandler{
		Tx:                    passthroughTx{},
		AssetRepository:       assetRepository,
		HistoryRepository:     historyRepository,
		ItemHistoryRepository: itemHistoryRepository,
		Clock:                 util.FrozenClock{Date: today},
	}

	assetID := uuid.New()

	assetRepository.EXPECT().
		Delete(gomock.Nil(), assetID).
		Return(nil)

	assetRepository.EXPECT().
		List(gomock.Nil()).
		Return([]model.Asset{{Category: CategorySavings, Amount: 40}}, nil)

	historyRepository.EXPECT().
		UpsertForDate(gomock.Nil(), int64(40), today).
		Return(&model.AssetHistory{TotalAmount: 40, RecordedDate: today}, nil)

	require.NoError(t, handler.Delete(assetID))
}
