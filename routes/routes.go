package routes

import (
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/configs"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/controllers"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/middlewares"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/repository"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	tableRepo := repository.NewTableRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	tableSvc := services.NewTableService(tableRepo)
	reservationSvc := services.NewReservationService(reservationRepo, tableRepo)
	menuSvc := services.NewMenuService(menuRepo)
	inventorySvc := services.NewInventoryService(db, inventoryRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo)
	dashboardSvc := services.NewDashboardService(reservationRepo, tableRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	tableCtrl := controllers.NewTableController(tableSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	inventoryCtrl := controllers.NewInventoryController(inventorySvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	dashboardCtrl := controllers.NewDashboardController(dashboardSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}
	staff := []string{entity.RoleStaff, entity.RoleManager, entity.RoleAdmin}

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Auth
	api.POST("/register", authCtrl.Register)
	api.POST("/login", authCtrl.Login)
	api.POST("/logout", authCtrl.Logout)
	api.GET("/user", auth(), authCtrl.Me)
	api.PATCH("/user", auth(), authCtrl.UpdateMe)

	// Public reads and walk-in bookings
	api.GET("/tables", tableCtrl.List)
	api.GET("/menu/categories", menuCtrl.Categories)
	api.GET("/menu/items", menuCtrl.Items)
	api.POST("/reservations", reservationCtrl.Create)

	// Customer (any signed-in role)
	customer := api.Group("/customer", auth())
	{
		customer.GET("/menu", menuCtrl.FullMenu)
		customer.GET("/tables", tableCtrl.ListAvailable)
		customer.GET("/reservations", reservationCtrl.ListMine)
		customer.POST("/reservations", reservationCtrl.CreateMine)
	}

	// Orders
	orders := api.Group("/orders", auth())
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("/my", orderCtrl.ListMine)
	}
	staffOrders := api.Group("/orders", auth(staff...))
	{
		staffOrders.GET("", orderCtrl.List)
		staffOrders.PATCH("/:id/status", orderCtrl.UpdateStatus)
	}

	// Staff management surface
	mgmt := api.Group("", auth(staff...))
	{
		mgmt.POST("/tables", tableCtrl.Create)
		mgmt.PATCH("/tables/:id/status", tableCtrl.UpdateStatus)

		mgmt.GET("/reservations", reservationCtrl.List)
		mgmt.PATCH("/reservations/:id/status", reservationCtrl.UpdateStatus)
		mgmt.DELETE("/reservations/:id", reservationCtrl.Delete)

		mgmt.POST("/menu/categories", menuCtrl.CreateCategory)
		mgmt.POST("/menu/items", menuCtrl.CreateItem)
		mgmt.PATCH("/menu/items/:id", menuCtrl.UpdateItem)
		mgmt.DELETE("/menu/items/:id", menuCtrl.DeleteItem)

		mgmt.GET("/inventory", inventoryCtrl.List)
		mgmt.POST("/inventory", inventoryCtrl.Create)
		mgmt.PATCH("/inventory/:id", inventoryCtrl.Update)
		mgmt.DELETE("/inventory/:id", inventoryCtrl.Delete)
		mgmt.POST("/inventory/:id/restock", inventoryCtrl.Restock)
		mgmt.GET("/inventory/:id/movements", inventoryCtrl.Movements)

		mgmt.GET("/dashboard/stats", dashboardCtrl.Stats)
		mgmt.GET("/dashboard/recent-reservations", dashboardCtrl.RecentReservations)
	}
}
