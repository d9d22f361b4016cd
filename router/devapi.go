package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/config"
	"github.com/yeremiapane/reserva-dashboard/devapi"
	"github.com/yeremiapane/reserva-dashboard/middlewares"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// SetupDevAPIRouter builds the reference REST API on db.
func SetupDevAPIRouter(db *gorm.DB, cfg config.DevAPI) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(100, time.Second).RateLimit())

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, tokenTTL)

	clienteCtrl := devapi.NewClienteController(db)
	mesaCtrl := devapi.NewMesaController(db)
	funcionarioCtrl := devapi.NewFuncionarioController(db, tokens, cfg.AdminEmail)
	reservaCtrl := devapi.NewReservaController(db)
	legacyCtrl := devapi.NewLegacyController(db)
	dashboardCtrl := devapi.NewDashboardController(db)

	r.GET("/", func(c *gin.Context) {
		utils.RespondMessage(c, http.StatusOK, "API do Restaurante funcionando!")
	})
	r.POST("/api/funcionarios/login", funcionarioCtrl.Login)
	r.POST("/reservas", legacyCtrl.Create)

	api := r.Group("/api")
	if cfg.RequireAuth {
		api.Use(middlewares.BearerAuth(tokens))
	}
	{
		api.GET("/clientes/", clienteCtrl.List)
		api.POST("/clientes/", clienteCtrl.Create)
		api.PUT("/clientes/:id", clienteCtrl.Update)
		api.DELETE("/clientes/:id", clienteCtrl.Delete)

		api.GET("/mesas/", mesaCtrl.List)
		api.POST("/mesas/", mesaCtrl.Create)
		api.PUT("/mesas/:id", mesaCtrl.Update)
		api.DELETE("/mesas/:id", mesaCtrl.Delete)

		api.GET("/funcionarios/", funcionarioCtrl.List)
		api.POST("/funcionarios/", funcionarioCtrl.Create)
		api.PUT("/funcionarios/:id", funcionarioCtrl.Update)
		api.DELETE("/funcionarios/:id", funcionarioCtrl.Delete)

		api.GET("/reservas/", reservaCtrl.List)
		api.POST("/reservas/", reservaCtrl.Create)
		api.PUT("/reservas/:id", reservaCtrl.Update)
		api.DELETE("/reservas/:id", reservaCtrl.Delete)

		api.GET("/dashboard/stats", dashboardCtrl.Stats)
	}

	return r
}
