package api

import (
	"fmt"
	"nestegg/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createThoughtRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`
}

type updateThoughtRequest struct {
	Content string `json:"content"`
}

func validateThoughtContent(content string) error {
	if content == "" {
		return fmt.Errorf("thought content is required")
	}
	if len(content) > service.MaxThoughtContentLength {
		return fmt.Errorf("thought content too long - must be <= %d characters", service.MaxThoughtContentLength)
	}
	return nil
}

func (m ApiHandler) listThoughts(c *gin.Context) {
	roots, err := m.ThoughtService.ListRoots()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, roots)
}

func (m ApiHandler) createThought(c *gin.Context) {
	var requestBody createThoughtRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := validateThoughtContent(requestBody.Content); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var parentID *uuid.UUID
	if requestBody.ParentID != nil {
		id, err := uuid.Parse(*requestBody.ParentID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid parent id: %w", err), c, 400)
			return
		}
		parentID = &id
	}

	node, err := m.ThoughtService.Create(requestBody.Content, parentID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, node)
}

func (m ApiHandler) updateThought(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid thought id: %w", err), c, 400)
		return
	}

	var requestBody updateThoughtRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if err := validateThoughtContent(requestBody.Content); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	node, err := m.ThoughtService.Update(id, requestBody.Content)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, node)
}

func (m ApiHandler) deleteThought(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid thought id: %w", err), c, 400)
		return
	}

	if err := m.ThoughtService.Delete(id); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"message": "ok"})
}
