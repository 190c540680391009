package api

import (
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"nestegg/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type assetResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Amount         int64     `json:"amount"`
	PreviousAmount int64     `json:"previousAmount"`
	Category       string    `json:"category"`
	Platform       *string   `json:"platform"`
	Description    *string   `json:"description"`
	CreatedAt      time.Time `json:"createdAt"`
}

func newAssetResponse(a model.Asset) assetResponse {
	return assetResponse{
		ID:             a.AssetID,
		Name:           a.Name,
		Amount:         a.Amount,
		PreviousAmount: a.PreviousAmount,
		Category:       a.Category,
		Platform:       a.Platform,
		Description:    a.Description,
		CreatedAt:      a.CreatedAt,
	}
}

type createAssetRequest struct {
	Name        string  `json:"name"`
	Amount      *int64  `json:"amount"`
	Category    string  `json:"category"`
	Platform    *string `json:"platform"`
	Description *string `json:"description"`
}

type updateAssetRequest struct {
	Name        string  `json:"name"`
	Amount      *int64  `json:"amount"`
	Category    string  `json:"category"`
	Platform    *string `json:"platform"`
	Description *string `json:"description"`
}

func (m ApiHandler) createAsset(c *gin.Context) {
	var requestBody createAssetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("asset name is required"), c, 400)
		return
	}

	saved, err := m.AssetService.Create(service.CreateAssetInput{
		Name:        requestBody.Name,
		Amount:      requestBody.Amount,
		Category:    requestBody.Category,
		Platform:    requestBody.Platform,
		Description: requestBody.Description,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newAssetResponse(*saved))
}

func (m ApiHandler) listAssets(c *gin.Context) {
	assets, err := m.AssetService.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []assetResponse{}
	for _, a := range assets {
		out = append(out, newAssetResponse(a))
	}

	c.JSON(200, out)
}

func (m ApiHandler) updateAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset id: %w", err), c, 400)
		return
	}

	var requestBody updateAssetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	// the previous-amount comparison needs a concrete incoming amount
	if requestBody.Amount == nil {
		returnErrorJsonCode(fmt.Errorf("amount is required on update"), c, 400)
		return
	}

	updated, err := m.AssetService.Update(id, service.UpdateAssetInput{
		Name:        requestBody.Name,
		Amount:      *requestBody.Amount,
		Category:    requestBody.Category,
		Platform:    requestBody.Platform,
		Description: requestBody.Description,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newAssetResponse(*updated))
}

func (m ApiHandler) deleteAsset(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid asset id: %w", err), c, 400)
		return
	}

	if err := m.AssetService.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}
