package service

import (
	"fmt"
	"nestegg/internal/domain"
	"nestegg/internal/repository"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

type InsightsService interface {
	AssetChanges() ([]domain.AssetChange, error)
	NetWorthStats() (*domain.NetWorthStats, error)
}

func NewInsightsService(
	assetRepository repository.AssetRepository,
	historyRepository repository.AssetHistoryRepository,
) InsightsService {
	return insightsServiceHandler{
		AssetRepository:   assetRepository,
		HistoryRepository: historyRepository,
	}
}

type insightsServiceHandler struct {
	AssetRepository   repository.AssetRepository
	HistoryRepository repository.AssetHistoryRepository
}

func (h insightsServiceHandler) AssetChanges() ([]domain.AssetChange, error) {
	assets, err := h.AssetRepository.List(nil)
	if err != nil {
		return nil, err
	}

	out := []domain.AssetChange{}
	for _, a := range assets {
		change := domain.AssetChange{
			AssetID:        a.AssetID,
			Name:           a.Name,
			Category:       a.Category,
			Amount:         a.Amount,
			PreviousAmount: a.PreviousAmount,
		}
		if a.PreviousAmount != 0 {
			fraction := decimal.NewFromInt(a.Amount - a.PreviousAmount).
				Div(decimal.NewFromInt(a.PreviousAmount))
			change.ChangeFraction = &fraction
		}
		out = append(out, change)
	}

	return out, nil
}

func (h insightsServiceHandler) NetWorthStats() (*domain.NetWorthStats, error) {
	history, err := h.HistoryRepository.List()
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return &domain.NetWorthStats{}, nil
	}

	totals := make([]float64, 0, len(history))
	for _, row := range history {
		totals = append(totals, float64(row.TotalAmount))
	}

	mean, err := stats.Mean(totals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean: %w", err)
	}
	min, err := stats.Min(totals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute min: %w", err)
	}
	max, err := stats.Max(totals)
	if err != nil {
		return nil, fmt.Errorf("failed to compute max: %w", err)
	}

	latest := history[len(history)-1]
	return &domain.NetWorthStats{
		Days:   len(history),
		Mean:   mean,
		Min:    min,
		Max:    max,
		Latest: &latest.TotalAmount,
		AsOf:   &latest.RecordedDate,
	}, nil
}
