package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/config"
	"github.com/yeremiapane/reserva-dashboard/legacyform"
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

	api := apiclient.New(cfg.Legacy.APIBaseURL, cfg.Legacy.APITimeout)
	r := legacyform.SetupRouter(api)

	utils.InfoLogger.Printf("Legacy form listening on port %s (API %s)", cfg.Legacy.Port, cfg.Legacy.APIBaseURL)
	if err := r.Run(":" + cfg.Legacy.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
