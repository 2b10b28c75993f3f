package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/Lutkowo/lutkowo/config"
	"github.com/Lutkowo/lutkowo/middleware"
	"github.com/Lutkowo/lutkowo/routes"

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
		config.ConnectDB()
		config.ConnectRedis()

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))

		refresher := routes.SetupRoutes(router)
		// the instance lives as long as the function container
		go refresher.Run(context.Background())
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
