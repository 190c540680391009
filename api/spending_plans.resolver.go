package api

import (
	"fmt"
	"nestegg/internal/db/models/postgres/public/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type spendingPlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Amount      int64     `json:"amount"`
	DueDate     *string   `json:"dueDate"`
	Description *string   `json:"description"`
	IsPaid      bool      `json:"isPaid"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newSpendingPlanResponse(sp model.SpendingPlan) spendingPlanResponse {
	out := spendingPlanResponse{
		ID:          sp.SpendingPlanID,
		Title:       sp.Title,
		Amount:      sp.Amount,
		Description: sp.Description,
		IsPaid:      sp.IsPaid,
		CreatedAt:   sp.CreatedAt,
	}
	if sp.DueDate != nil {
		dueDate := sp.DueDate.Format(dateLayout)
		out.DueDate = &dueDate
	}
	return out
}

type spendingPlanRequest struct {
	Title       string  `json:"title"`
	Amount      *int64  `json:"amount"`
	DueDate     *string `json:"dueDate"`
	Description *string `json:"description"`
	IsPaid      bool    `json:"isPaid"`
}

func (r spendingPlanRequest) toModel() (model.SpendingPlan, error) {
	out := model.SpendingPlan{
		Title:       r.Title,
		Description: r.Description,
		IsPaid:      r.IsPaid,
	}
	if r.Title == "" {
		return out, fmt.Errorf("spending plan title is required")
	}
	if r.Amount != nil {
		out.Amount = *r.Amount
	}
	if r.DueDate != nil {
		dueDate, err := time.Parse(dateLayout, *r.DueDate)
		if err != nil {
			return out, fmt.Errorf("invalid due date: %w", err)
		}
		out.DueDate = &dueDate
	}
	return out, nil
}

func (m ApiHandler) listSpendingPlans(c *gin.Context) {
	plans, err := m.SpendingPlanRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []spendingPlanResponse{}
	for _, sp := range plans {
		out = append(out, newSpendingPlanResponse(sp))
	}

	c.JSON(200, out)
}

func (m ApiHandler) createSpendingPlan(c *gin.Context) {
	var requestBody spendingPlanRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	in, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	saved, err := m.SpendingPlanRepository.Add(in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newSpendingPlanResponse(*saved))
}

func (m ApiHandler) updateSpendingPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid spending plan id: %w", err), c, 400)
		return
	}

	var requestBody spendingPlanRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	in, err := requestBody.toModel()
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	in.SpendingPlanID = id

	updated, err := m.SpendingPlanRepository.Update(in)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, newSpendingPlanResponse(*updated))
}

func (m ApiHandler) deleteSpendingPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid spending plan id: %w", err), c, 400)
		return
	}

	if err := m.SpendingPlanRepository.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}
