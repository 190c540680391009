package api

import (
	"github.com/gin-gonic/gin"
)

// assetInsights returns derived per-asset change rates plus summary stats
// over the daily total history.
func (m ApiHandler) assetInsights(c *gin.Context) {
	changes, err := m.InsightsService.AssetChanges()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	netWorth, err := m.InsightsService.NetWorthStats()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{
		"assetChanges": changes,
		"netWorth":     netWorth,
	})
}
