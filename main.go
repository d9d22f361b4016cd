package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/config"
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

	api := apiclient.New(cfg.Dashboard.APIBaseURL, cfg.Dashboard.APITimeout)
	r := router.SetupRouter(cfg.Dashboard, api)
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Fatal(err)
	}

	utils.InfoLogger.Printf("Dashboard listening on port %s (API %s)", cfg.Dashboard.Port, cfg.Dashboard.APIBaseURL)
	if err := r.Run(":" + cfg.Dashboard.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
