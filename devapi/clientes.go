// Package devapi is a reference implementation of the restaurant REST API.
// The dashboard and its integration tests run against it.
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

const (
	msgDadosInvalidos = "Dados inválidos"
	msgErroInterno    = "Erro interno do servidor"
)

type ClienteController struct {
	DB *gorm.DB
}

func NewClienteController(db *gorm.DB) *ClienteController {
	return &ClienteController{DB: db}
}

// paramID reads :id. A malformed id answers 404 like an unknown one.
func paramID(c *gin.Context, notFound string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.RespondError(c, http.StatusNotFound, notFound)
		return 0, false
	}
	return id, true
}

func internalError(c *gin.Context, action string, err error) {
	utils.ErrorLogger.Printf("%s: %v", action, err)
	utils.RespondError(c, http.StatusInternalServerError, msgErroInterno)
}

func (cc *ClienteController) List(c *gin.Context) {
	clientes := []models.Cliente{}
	if err := cc.DB.Order("id").Find(&clientes).Error; err != nil {
		internalError(c, "list clientes", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, clientes)
}

func (cc *ClienteController) Create(c *gin.Context) {
	var req struct {
		Nome     string `json:"nome" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Telefone string `json:"telefone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	cliente := models.Cliente{Nome: req.Nome, Email: req.Email, Telefone: req.Telefone}
	if err := cc.DB.Create(&cliente).Error; err != nil {
		internalError(c, "create cliente", err)
		return
	}

	utils.InfoLogger.Printf("Cliente %d created", cliente.ID)
	utils.RespondJSON(c, http.StatusCreated, cliente)
}

// Update changes only the fields present in the body.
func (cc *ClienteController) Update(c *gin.Context) {
	id, ok := paramID(c, "Cliente não encontrado")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := cc.DB.First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		internalError(c, "find cliente", err)
		return
	}

	var req struct {
		Nome     *string `json:"nome"`
		Email    *string `json:"email"`
		Telefone *string `json:"telefone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}
	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Telefone != nil {
		cliente.Telefone = *req.Telefone
	}

	if err := cc.DB.Save(&cliente).Error; err != nil {
		internalError(c, "update cliente", err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, cliente)
}

// Delete refuses while reservations still reference the customer.
func (cc *ClienteController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Cliente não encontrado")
	if !ok {
		return
	}

	var cliente models.Cliente
	if err := cc.DB.First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, "Cliente não encontrado")
			return
		}
		internalError(c, "find cliente", err)
		return
	}

	var count int64
	if err := cc.DB.Model(&models.Reserva{}).Where("cliente_id = ?", id).Count(&count).Error; err != nil {
		internalError(c, "count reservas", err)
		return
	}
	if count > 0 {
		utils.RespondError(c, http.StatusBadRequest, "Não é possível deletar este cliente, pois há reservas associadas.")
		return
	}

	if err := cc.DB.Delete(&cliente).Error; err != nil {
		internalError(c, "delete cliente", err)
		return
	}
	utils.RespondMessage(c, http.StatusOK, "Cliente "+strconv.Itoa(id)+" excluído com sucesso")
}
