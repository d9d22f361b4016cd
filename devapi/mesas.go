package devapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"gorm.io/gorm"
)

type MesaController struct {
	DB *gorm.DB
}

func NewMesaController(db *gorm.DB) *MesaController {
	return &MesaController{DB: db}
}

func (mc *MesaController) numeroTaken(numero, exceptID int) (bool, error) {
	var count int64
	err := mc.DB.Model(&models.Mesa{}).Where("numero = ? AND id <> ?", numero, exceptID).Count(&count).Error
	return count > 0, err
}

func (mc *MesaController) List(c *gin.Context) {
	mesas := []models.Mesa{}
	if err := mc.DB.Order("numero").Find(&mesas).Error; err != nil {
		internalError(c, "list mesas", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, mesas)
}

// Create always starts the table as available.
func (mc *MesaController) Create(c *gin.Context) {
	var req struct {
		Numero     int `json:"numero" binding:"required,gt=0"`
		Capacidade int `json:"capacidade" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	taken, err := mc.numeroTaken(req.Numero, 0)
	if err != nil {
		internalError(c, "check mesa numero", err)
		return
	}
	if taken {
		utils.RespondError(c, http.StatusBadRequest, "Já existe uma mesa com este número")
		return
	}

	mesa := models.Mesa{Numero: req.Numero, Capacidade: req.Capacidade, Disponivel: true}
	if err := mc.DB.Create(&mesa).Error; err != nil {
		internalError(c, "create mesa", err)
		return
	}

	utils.InfoLogger.Printf("Mesa %d created (numero=%d)", mesa.ID, mesa.Numero)
	utils.RespondJSON(c, http.StatusCreated, mesa)
}

func (mc *MesaController) Update(c *gin.Context) {
	id, ok := paramID(c, "Mesa não encontrada")
	if !ok {
		return
	}

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Mesa não encontrada")
			return
		}
		internalError(c, "find mesa", err)
		return
	}

	var req struct {
		Numero     *int  `json:"numero"`
		Capacidade *int  `json:"capacidade"`
		Disponivel *bool `json:"disponivel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	if req.Numero != nil && *req.Numero != mesa.Numero {
		taken, err := mc.numeroTaken(*req.Numero, mesa.ID)
		if err != nil {
			internalError(c, "check mesa numero", err)
			return
		}
		if taken {
			utils.RespondError(c, http.StatusBadRequest, "Já existe uma mesa com este número")
			return
		}
		mesa.Numero = *req.Numero
	}
	if req.Capacidade != nil {
		mesa.Capacidade = *req.Capacidade
	}
	if req.Disponivel != nil {
		mesa.Disponivel = *req.Disponivel
	}

	if err := mc.DB.Save(&mesa).Error; err != nil {
		internalError(c, "update mesa", err)
		return
	}

	utils.InfoLogger.Printf("Mesa %d updated (disponivel=%t)", mesa.ID, mesa.Disponivel)
	utils.RespondJSON(c, http.StatusOK, mesa)
}

// Delete refuses while reservations still reference the table.
func (mc *MesaController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Mesa não encontrada")
	if !ok {
		return
	}

	var mesa models.Mesa
	if err := mc.DB.First(&mesa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Mesa não encontrada")
			return
		}
		internalError(c, "find mesa", err)
		return
	}

	var count int64
	if err := mc.DB.Model(&models.Reserva{}).Where("mesa_id = ?", id).Count(&count).Error; err != nil {
		internalError(c, "count reservas", err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Não é possível deletar esta mesa, pois há reservas associadas a ela.")
		return
	}

	if err := mc.DB.Delete(&mesa).Error; err != nil {
		internalError(c, "delete mesa", err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Mesa "+strconv.Itoa(id)+" excluída com sucesso")
}
