package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/config"
	"github.com/yeremiapane/reserva-dashboard/controllers"
	"github.com/yeremiapane/reserva-dashboard/middlewares"
	"github.com/yeremiapane/reserva-dashboard/services"
	"github.com/yeremiapane/reserva-dashboard/views"
)

// SetupRouter builds the server-rendered dashboard in front of api.
func SetupRouter(cfg config.Dashboard, api *apiclient.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.SetHTMLTemplate(views.Dashboard())

	authCtrl := controllers.NewAuthController(services.NewLoginFlow(api), cfg.CookieSecure)
	dashboardCtrl := controllers.NewDashboardController(api, cfg.CookieSecure)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})

	loginLimiter := middlewares.NewLoginRateLimiter(12*time.Second, 5)
	r.GET("/login", authCtrl.LoginPage)
	r.POST("/login", loginLimiter.Handler(authCtrl.Throttled), authCtrl.Login)
	r.POST("/logout", authCtrl.Logout)

	// ----------------------------------------------------------------
	//                      PROTECTED ROUTES
	// ----------------------------------------------------------------
	protected := r.Group("/")
	protected.Use(middlewares.SessionGuard(cfg.CookieSecure))
	{
		protected.GET("/dashboard", dashboardCtrl.Index)
		protected.GET("/dashboard/stats.json", dashboardCtrl.StatsJSON)

		controllers.NewResourceController(api, cfg.CookieSecure, controllers.ClientesScreen()).Register(protected)
		controllers.NewResourceController(api, cfg.CookieSecure, controllers.MesasScreen()).Register(protected)
		controllers.NewResourceController(api, cfg.CookieSecure, controllers.FuncionariosScreen()).Register(protected)
		controllers.NewResourceController(api, cfg.CookieSecure, controllers.ReservasScreen()).Register(protected)
	}

	return r
}
