package api

import (
	"log"
	"net/http"
	"sync"

	"exhibitor-portal/config"
	"exhibitor-portal/middleware"
	"exhibitor-portal/models"
	"exhibitor-portal/repositories"
	"exhibitor-portal/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.ConnectSheets()
		models.InitRedis()

		client := repositories.NewGoogleSheetsClient(config.SheetsService)

		email, err := models.NewEmailService()
		if err != nil {
			log.Println("Email notifications disabled:", err)
			email = nil
		}

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router, client, email)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
