package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"nestegg/api"
	"nestegg/internal"
	"nestegg/internal/logger"
	"nestegg/internal/repository"
	"nestegg/internal/service"
	"nestegg/internal/util"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	logDbInfo(dbConn, secrets.Db)

	assetRepository := repository.NewAssetRepository(dbConn)
	assetHistoryRepository := repository.NewAssetHistoryRepository(dbConn)
	assetItemHistoryRepository := repository.NewAssetItemHistoryRepository(dbConn)
	spendingPlanRepository := repository.NewSpendingPlanRepository(dbConn)
	thoughtRepository := repository.NewThoughtRepository(dbConn)

	assetService := service.NewAssetService(
		dbConn,
		assetRepository,
		assetHistoryRepository,
		assetItemHistoryRepository,
		util.NewClock(),
	)
	thoughtService := service.NewThoughtService(thoughtRepository)
	insightsService := service.NewInsightsService(assetRepository, assetHistoryRepository)

	apiHandler := &api.ApiHandler{
		Db:                     dbConn,
		AssetService:           assetService,
		ThoughtService:         thoughtService,
		InsightsService:        insightsService,
		SpendingPlanRepository: spendingPlanRepository,
	}

	return apiHandler, nil
}

func logDbInfo(dbConn *sql.DB, secrets internal.DbSecrets) {
	l := logger.New()
	if err := dbConn.Ping(); err != nil {
		l.Errorw("failed to reach db", "host", secrets.Host, "error", err)
		return
	}
	l.Infow("connected to db",
		"host", secrets.Host,
		"port", secrets.Port,
		"database", secrets.Database,
		"user", secrets.User,
		"ssl", secrets.EnableSsl,
	)
}
