package api

import (
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/repository"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type assetHistoryResponse struct {
	ID           uuid.UUID `json:"id"`
	TotalAmount  int64     `json:"totalAmount"`
	RecordedDate string    `json:"recordedDate"`
}

func newAssetHistoryResponse(h model.AssetHistory) assetHistoryResponse {
	return assetHistoryResponse{
		ID:           h.AssetHistoryID,
		TotalAmount:  h.TotalAmount,
		RecordedDate: h.RecordedDate.Format(dateLayout),
	}
}

type updateAssetHistoryRequest struct {
	TotalAmount  int64   `json:"totalAmount"`
	RecordedDate *string `json:"recordedDate"`
}

func (m ApiHandler) listAssetHistory(c *gin.Context) {
	history, err := m.AssetService.History()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []assetHistoryResponse{}
	for _, h := range history {
		out = append(out, newAssetHistoryResponse(h))
	}

	c.JSON(200, out)
}

// updateAssetHistory is a manual override of the aggregated row. The
// recorded date only changes when the request carries one.
func (m ApiHandler) updateAssetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset history id: %w", err), c, 400)
		return
	}

	var requestBody updateAssetHistoryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	in := repository.UpdateAssetHistoryInput{
		AssetHistoryID: id,
		TotalAmount:    requestBody.TotalAmount,
	}
	if requestBody.RecordedDate != nil {
		date, err := time.Parse(dateLayout, *requestBody.RecordedDate)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid recorded date: %w", err), c, 400)
			return
		}
		in.RecordedDate = &date
	}

	updated, err := m.AssetService.UpdateHistory(in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newAssetHistoryResponse(*updated))
}

func (m ApiHandler) deleteAssetHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset history id: %w", err), c, 400)
		return
	}

	if err := m.AssetService.DeleteHistory(id); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}

type assetHistoryCsvRow struct {
	RecordedDate string `csv:"recorded_date"`
	TotalAmount  int64  `csv:"total_amount"`
}

func (m ApiHandler) exportAssetHistory(c *gin.Context) {
	history, err := m.AssetService.History()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	rows := []assetHistoryCsvRow{}
	for _, h := range history {
		rows = append(rows, assetHistoryCsvRow{
			RecordedDate: h.RecordedDate.Format(dateLayout),
			TotalAmount:  h.TotalAmount,
		})
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=asset_history.csv")
	if err := gocsv.Marshal(rows, c.Writer); err != nil {
		returnErrorJson(fmt.Errorf("failed to write csv: %w", err), c)
		return
	}
}

func (m ApiHandler) listAssetItemHistory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset id: %w", err), c, 400)
		return
	}

	itemHistory, err := m.AssetService.ItemHistory(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	type itemHistoryResponse struct {
		ID           uuid.UUID `json:"id"`
		AssetID      uuid.UUID `json:"assetId"`
		Amount       int64     `json:"amount"`
		RecordedDate string    `json:"recordedDate"`
	}

	out := []itemHistoryResponse{}
	for _, ih := range itemHistory {
		out = append(out, itemHistoryResponse{
			ID:           ih.AssetItemHistoryID,
			AssetID:      ih.AssetID,
			Amount:       ih.Amount,
			RecordedDate: ih.RecordedDate.Format(dateLayout),
		})
	}

	c.JSON(200, out)
}
