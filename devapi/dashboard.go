package devapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"gorm.io/gorm"
)

// DashboardStats are the server-side counters of the original backend.
type DashboardStats struct {
	ReservasHoje        int64 `json:"reservasHoje"`
	MesasOcupadas       int64 `json:"mesasOcupadas"`
	TotalMesas          int64 `json:"totalMesas"`
	TotalFuncionarios   int64 `json:"totalFuncionarios"`
	TotalReservasGeral  int64 `json:"totalReservasGeral"`
	ReservasPendentes   int64 `json:"reservasPendentes"`
	ReservasConfirmadas int64 `json:"reservasConfirmadas"`
	ReservasCanceladas  int64 `json:"reservasCanceladas"`
}

type DashboardController struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db, Now: time.Now}
}

func (dc *DashboardController) Stats(c *gin.Context) {
	var stats DashboardStats
	hoje := dc.Now().Format("2006-01-02")

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{dc.DB.Model(&models.Reserva{}).Where("data_reserva = ?", hoje), &stats.ReservasHoje},
		{dc.DB.Model(&models.Mesa{}).Where("disponivel = ?", false), &stats.MesasOcupadas},
		{dc.DB.Model(&models.Mesa{}), &stats.TotalMesas},
		{dc.DB.Model(&models.Funcionario{}), &stats.TotalFuncionarios},
		{dc.DB.Model(&models.Reserva{}), &stats.TotalReservasGeral},
		{dc.DB.Model(&models.Reserva{}).Where("status = ?", models.StatusPendente), &stats.ReservasPendentes},
		{dc.DB.Model(&models.Reserva{}).Where("status = ?", models.StatusConfirmada), &stats.ReservasConfirmadas},
		{dc.DB.Model(&models.Reserva{}).Where("status = ?", models.StatusCancelada), &stats.ReservasCanceladas},
	}
	for _, q := range counts {
		if err := q.query.Count(q.dest).Error; err != nil {
			internalError(c, "dashboard stats", err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, stats)
}
