package routes

import (
	"exhibitor-portal/controllers"
	"exhibitor-portal/middleware"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, client repositories.SpreadsheetClient, email *models.EmailService) {
	authCtrl := controllers.NewAuthController(client)
	orderCtrl := controllers.NewOrderController(client, email)
	showCtrl := controllers.NewShowController(client)
	exportCtrl := controllers.NewExportController(client)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/staff/login", authCtrl.StaffLogin)
	router.GET("/shows", showCtrl.GetShows)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.POST("/orders", orderCtrl.PlaceOrder)
		auth.DELETE("/orders", orderCtrl.DeleteOrder)
		auth.GET("/inventory", showCtrl.GetInventory)
		auth.POST("/refresh", orderCtrl.Refresh)
	}

	staff := router.Group("/staff")
	staff.Use(middleware.AuthMiddleware(), middleware.StaffMiddleware())
	{
		staff.GET("/orders", orderCtrl.GetWorksheetOrders)
		staff.GET("/orders/find", orderCtrl.FindOrder)
		staff.PATCH("/orders/status", orderCtrl.UpdateOrderStatus)
		staff.GET("/orders/export", exportCtrl.ExportOrders)
		staff.GET("/worksheets", showCtrl.GetWorksheets)
	}
}
