package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) health(c *gin.Context) {
	if err := m.Db.Ping(); err != nil {
		returnErrorJsonCode(fmt.Errorf("db ping failed: %w", err), c, 503)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
