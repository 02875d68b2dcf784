package routes

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"inventory-system/internal/controllers"
	"inventory-system/internal/repositories"
	"inventory-system/internal/services"
)

// InitRouter собирает репозитории, сервисы и контроллеры и вешает
// все маршруты под /api.
func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, logger *zap.Logger) {
	logger.Info("InitRouter: регистрация маршрутов")

	api := e.Group("/api")

	// --- РЕПОЗИТОРИИ ---
	equipmentRepo := repositories.NewEquipmentRepository(dbConn, logger)
	inventoryRepo := repositories.NewInventoryRepository(dbConn, logger)
	userRepo := repositories.NewUserRepository(dbConn, logger)
	assignmentRepo := repositories.NewAssignmentRepository(dbConn, logger)
	reportRepo := repositories.NewReportRepository(dbConn, logger)

	// --- СЕРВИСЫ ---
	equipmentService := services.NewEquipmentService(equipmentRepo, logger)
	inventoryService := services.NewInventoryService(inventoryRepo)
	userService := services.NewUserService(userRepo, assignmentRepo, logger)
	searchService := services.NewSearchService(equipmentRepo)
	reportService := services.NewReportService(reportRepo)

	// --- КОНТРОЛЛЕРЫ ---
	equipmentCtrl := controllers.NewEquipmentController(equipmentService, logger)
	inventoryCtrl := controllers.NewInventoryController(inventoryService, logger)
	userCtrl := controllers.NewUserController(userService, logger)
	searchCtrl := controllers.NewSearchController(searchService)
	reportCtrl := controllers.NewReportController(reportService, logger)

	registerEquipmentRoutes(api, equipmentCtrl)
	registerInventoryRoutes(api, inventoryCtrl)
	registerUserRoutes(api, userCtrl)
	registerSearchRoutes(api, searchCtrl)
	registerReportRoutes(api, reportCtrl)
}

func registerEquipmentRoutes(g *echo.Group, ctrl *controllers.EquipmentController) {
	g.GET("/equipos", ctrl.GetEquipments)
	g.POST("/equipos", ctrl.CreateEquipment)
	g.PUT("/equipos", ctrl.UpdateEquipment)
	g.DELETE("/equipos", ctrl.DeleteEquipment)
}

func registerInventoryRoutes(g *echo.Group, ctrl *controllers.InventoryController) {
	g.GET("/almacen", ctrl.GetItems)
	g.POST("/almacen", ctrl.CreateItem)
	g.PUT("/almacen", ctrl.UpdateItem)
	g.DELETE("/almacen", ctrl.DeleteItem)
}

func registerUserRoutes(g *echo.Group, ctrl *controllers.UserController) {
	g.GET("/usuarios", ctrl.GetActiveUsers)
	g.GET("/usuarios/:id", ctrl.FindUser)
	g.PUT("/usuarios", ctrl.UpdateUser)
	g.DELETE("/usuarios", ctrl.DeactivateUser)
	g.POST("/asignaciones", ctrl.AssignUser)
}

func registerSearchRoutes(g *echo.Group, ctrl *controllers.SearchController) {
	g.GET("/buscar", ctrl.UniversalSearch)
}

func registerReportRoutes(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reportes/equipos", ctrl.GetEquipmentReport)
}
