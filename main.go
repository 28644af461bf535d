package main

import (
	"log"

	"growbit/internal/config"
	"growbit/internal/handlers"
	"growbit/internal/logger"
	"growbit/internal/middleware"
	"growbit/internal/service"
	"growbit/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Initialize(logger.ParseLevel(cfg.LogLevel), cfg.IsDevelopment())

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer st.Close()

	if err := st.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	svc := service.New(st, cfg.TokenSecret, cfg.TokenTTL)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	handlers.SetupRoutes(r, svc)

	logger.Info("Server starting", "port", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
