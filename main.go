package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lutkowo/lutkowo/config"
	_ "github.com/Lutkowo/lutkowo/docs"
	"github.com/Lutkowo/lutkowo/middleware"
	"github.com/Lutkowo/lutkowo/routes"

	"github.com/gin-gonic/gin"
)

// @title Lutkowo Store API
// @version 1.0
// @description Storefront backend: catalog, categories, carts, coupons, accounts and image uploads.
// @BasePath /
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

	config.ConnectDB()
	defer config.CloseDB()

	config.ConnectRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(config.AppConfig.OriginURL))
	refresher := routes.SetupRoutes(router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go refresher.Run(ctx)

	port := ":" + config.AppConfig.Port
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       120 * time.Second,
		// event streams stay open, so no WriteTimeout
	}

	go func() {
		log.Printf("Server starting on port %s", port)
		log.Printf("Environment: %s", config.AppConfig.AppEnv)
		log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received; shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
		return
	}
	log.Println("Server stopped")
}
