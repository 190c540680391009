package api

import (
	"database/sql"
	"errors"
	"fmt"
	"nestegg/internal/logger"
	"nestegg/internal/repository"
	"nestegg/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
)

type ApiHandler struct {
	Db              *sql.DB
	AssetService    service.AssetService
	ThoughtService  service.ThoughtService
	InsightsService service.InsightsService

	SpendingPlanRepository repository.SpendingPlanRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to nestegg"})
	})

	router.GET("/api/health", m.health)

	router.POST("/api/assets", m.createAsset)
	router.GET("/api/assets", m.listAssets)
	router.PUT("/api/assets/:id", m.updateAsset)
	router.DELETE("/api/assets/:id", m.deleteAsset)
	router.GET("/api/assets/insights", m.assetInsights)

	router.GET("/api/assets/history", m.listAssetHistory)
	router.GET("/api/assets/history/export", m.exportAssetHistory)
	router.PUT("/api/assets/history/:id", m.updateAssetHistory)
	router.DELETE("/api/assets/history/:id", m.deleteAssetHistory)
	router.GET("/api/assets/:id/item-history", m.listAssetItemHistory)

	router.GET("/api/thoughts", m.listThoughts)
	router.POST("/api/thoughts", m.createThought)
	router.PUT("/api/thoughts/:id", m.updateThought)
	router.DELETE("/api/thoughts/:id", m.deleteThought)

	router.GET("/api/spending-plans", m.listSpendingPlans)
	router.POST("/api/spending-plans", m.createSpendingPlan)
	router.PUT("/api/spending-plans/:id", m.updateSpendingPlan)
	router.DELETE("/api/spending-plans/:id", m.deleteSpendingPlan)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps missing rows to 404 and everything else to 500.
func returnErrorJson(err error, c *gin.Context) {
	code := 500
	if errors.Is(err, qrm.ErrNoRows) {
		code = 404
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()

	logger.FromContext(ctx.Request.Context()).Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
