package main

import (
	"log"

	"exhibitor-portal/config"
	_ "exhibitor-portal/docs"
	"exhibitor-portal/middleware"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/routes"

	"github.com/gin-gonic/gin"
)

// @title Exhibitor Portal API
// @version 1.0
// @description Order backend for the Exhibitor Portal, backed by a Google Sheets workbook.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.ConnectSheets()
	models.InitRedis()
	defer models.CloseRedis()

	client := repositories.NewGoogleSheetsClient(config.SheetsService)

	email, err := models.NewEmailService()
	if err != nil {
		log.Println("Email notifications disabled:", err)
		email = nil
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, client, email)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
