package devapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"gorm.io/gorm"
)

// LegacyController serves the flat reservation endpoint used by the
// standalone form. Its records are independent of the dashboard's.
type LegacyController struct {
	DB *gorm.DB
}

func NewLegacyController(db *gorm.DB) *LegacyController {
	return &LegacyController{DB: db}
}

func (lc *LegacyController) Create(c *gin.Context) {
	var req struct {
		NomeCliente     string `json:"nome_cliente" binding:"required"`
		TelefoneCliente string `json:"telefone_cliente"`
		Data            string `json:"data" binding:"required"`
		Hora            string `json:"hora" binding:"required"`
		NumeroPessoas   int    `json:"numero_pessoas" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validDate(req.Data) || !validTime(req.Hora) {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	reserva := models.LegacyReserva{
		NomeCliente:     req.NomeCliente,
		TelefoneCliente: req.TelefoneCliente,
		Data:            req.Data,
		Hora:            req.Hora,
		NumeroPessoas:   req.NumeroPessoas,
		Status:          string(models.StatusConfirmada),
	}
	if err := lc.DB.Create(&reserva).Error; err != nil {
		internalError(c, "create reserva avulsa", err)
		return
	}

	utils.InfoLogger.Printf("Reserva avulsa %d created for %d pessoas", reserva.ID, reserva.NumeroPessoas)
	utils.RespondMessage(c, http.StatusCreated, "Reserva realizada com sucesso!")
}
