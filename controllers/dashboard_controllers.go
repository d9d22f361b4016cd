package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/services"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

type StatsProvider interface {
	Stats(ctx context.Context) (*services.Stats, error)
}

type DashboardController struct {
	api          *apiclient.Client
	cookieSecure bool
	// newStats builds the aggregator for a request's authenticated client.
	newStats func(api *apiclient.Client) StatsProvider
}

func NewDashboardController(api *apiclient.Client, cookieSecure bool) *DashboardController {
	return &DashboardController{
		api:          api,
		cookieSecure: cookieSecure,
		newStats: func(api *apiclient.Client) StatsProvider {
			return services.NewDashboardService(api)
		},
	}
}

func (dc *DashboardController) stats(c *gin.Context, store services.Storage) (*services.Stats, error) {
	token, _ := store.Get(services.TokenKey)
	stats, err := dc.newStats(dc.api.WithToken(token)).Stats(c.Request.Context())
	if err != nil {
		utils.ErrorLogger.Printf("Error loading dashboard stats: %v", err)
	}
	return stats, err
}

// Index renders the stat tiles. A failed fetch leaves them at zero and is
// only logged.
func (dc *DashboardController) Index(c *gin.Context) {
	store := services.NewCookieStorage(c, dc.cookieSecure)
	page := newPage(c, store, "Dashboard", "dashboard", dc.cookieSecure)
	if stats, err := dc.stats(c, store); err == nil {
		page.Stats = *stats
	}
	c.HTML(http.StatusOK, "dashboard.html", page)
}

func (dc *DashboardController) StatsJSON(c *gin.Context) {
	stats, err := dc.stats(c, services.NewCookieStorage(c, dc.cookieSecure))
	if err != nil {
		utils.RespondError(c, http.StatusBadGateway, "Erro ao carregar estatísticas")
		return
	}
	utils.RespondJSON(c, http.StatusOK, stats)
}
