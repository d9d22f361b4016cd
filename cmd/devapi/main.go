package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yeremiapane/reserva-dashboard/config"
	"github.com/yeremiapane/reserva-dashboard/database"
	"github.com/yeremiapane/reserva-dashboard/router"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

func main() {
	cfg, loaded := config.Load()
	utils.InitLogger(cfg.Dashboard.LogLevel)
	if !loaded {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	if cfg.Dashboard.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.DevAPI.JWTSecret == "" {
		cfg.DevAPI.JWTSecret = uuid.NewString()
		utils.InfoLogger.Println("Warning: JWT_SECRET not set, tokens will not survive a restart")
	}

	db, err := database.Open(cfg.DevAPI.DBDriver, cfg.DevAPI.DBDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
	if err := database.SeedAdmin(db, cfg.DevAPI.AdminEmail, cfg.DevAPI.AdminPassword); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed administrator: %v", err)
	}

	r := router.SetupDevAPIRouter(db, cfg.DevAPI)
	utils.InfoLogger.Printf("Reference API listening on port %s (auth required: %t)", cfg.DevAPI.Port, cfg.DevAPI.RequireAuth)
	if err := r.Run(":" + cfg.DevAPI.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
