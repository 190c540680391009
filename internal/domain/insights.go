package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetChange reports how an asset moved since its previous amount.
// ChangeFraction is nil when there is no previous amount to compare
// against.
type AssetChange struct {
	AssetID        uuid.UUID        `json:"assetId"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	Amount         int64            `json:"amount"`
	PreviousAmount int64            `json:"previousAmount"`
	ChangeFraction *decimal.Decimal `json:"changeFraction"`
}

// NetWorthStats summarizes the daily total history.
type NetWorthStats struct {
	Days   int        `json:"days"`
	Mean   float64    `json:"mean"`
	Min    float64    `json:"min"`
	Max    float64    `json:"max"`
	Latest *int64     `json:"latest"`
	AsOf   *time.Time `json:"asOf"`
}
