package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
	"inventory-system/pkg/config"
	"inventory-system/pkg/filestorage"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, logger *zap.Logger, cfg *config.Config) error {
	api := e.Group("/api")

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Storage.UploadsDir)
	if err != nil {
		return err
	}

	// Repositorios
	store := repositories.NewEquipmentRepository(dbConn, logger)
	historyCache := repositories.NewRedisHistoryCache(redisClient)

	// Servicios
	equipmentService := services.NewEquipmentService(store, logger)
	transitionService := services.NewTransitionService(store, historyCache, logger, cfg.Core.TxTimeout)
	resolverService := services.NewResolverService(store, logger)
	historyService := services.NewHistoryService(store, historyCache, logger, cfg.Core.HistoryCacheTTL)
	attachmentService := services.NewAttachmentService(store, resolverService, fileStorage, logger)

	// Controladores
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, resolverService, logger)
	assignmentCtrl := controllers.NewAssignmentController(equipmentService, transitionService, logger)
	transitionCtrl := controllers.NewTransitionController(transitionService, logger)
	historyCtrl := controllers.NewHistoryController(historyService, logger)
	attachmentCtrl := controllers.NewAttachmentController(attachmentService, logger)

	runEquipmentRouter(api, equipmentCtrl, transitionCtrl)
	runAssignmentRouter(api, assignmentCtrl)
	runHistoryRouter(api, historyCtrl)
	runAttachmentRouter(api, attachmentCtrl)

	logger.Info("rutas registradas")
	return nil
}
