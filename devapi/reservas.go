package devapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errReserva carries a client-facing rejection out of a transaction.
type errReserva struct {
	status  int
	message string
}

func (e *errReserva) Error() string { return e.message }

type ReservaController struct {
	DB *gorm.DB
}

func NewReservaController(db *gorm.DB) *ReservaController {
	return &ReservaController{DB: db}
}

func (rc *ReservaController) respond(c *gin.Context, action string, err error) {
	var rejected *errReserva
	if errors.As(err, &rejected) {
		utils.RespondError(c, rejected.status, rejected.message)
		return
	}
	internalError(c, action, err)
}

func (rc *ReservaController) find(tx *gorm.DB, id int) (*models.Reserva, error) {
	var reserva models.Reserva
	if err := tx.Preload("Cliente").Preload("Mesa").First(&reserva, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &errReserva{status: http.StatusNotFound, message: "Reserva não encontrada"}
		}
		return nil, err
	}
	reserva.Denormalize()
	return &reserva, nil
}

func (rc *ReservaController) List(c *gin.Context) {
	reservas := []models.Reserva{}
	if err := rc.DB.Preload("Cliente").Preload("Mesa").Order("data_reserva, horario").Find(&reservas).Error; err != nil {
		internalError(c, "list reservas", err)
		return
	}
	for i := range reservas {
		reservas[i].Denormalize()
	}
	utils.RespondJSON(c, http.StatusOK, reservas)
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// Create books an available table and marks it occupied.
func (rc *ReservaController) Create(c *gin.Context) {
	var req struct {
		ClienteID   int    `json:"cliente_id" binding:"required"`
		MesaID      int    `json:"mesa_id" binding:"required"`
		DataReserva string `json:"data_reserva" binding:"required"`
		Horario     string `json:"horario" binding:"required"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validDate(req.DataReserva) || !validTime(req.Horario) {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	status := models.StatusPendente
	if req.Status != "" {
		st, ok := models.ParseReservaStatus(req.Status)
		if !ok {
			utils.RespondError(c, http.StatusBadRequest, "Status inválido")
			return
		}
		status = st
	}

	var created *models.Reserva
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		var cliente models.Cliente
		var mesa models.Mesa
		errCliente := tx.First(&cliente, req.ClienteID).Error
		errMesa := tx.First(&mesa, req.MesaID).Error
		if errors.Is(errCliente, gorm.ErrRecordNotFound) || errors.Is(errMesa, gorm.ErrRecordNotFound) {
			return &errReserva{status: http.StatusBadRequest, message: "Cliente ou mesa inválidos"}
		}
		if errCliente != nil {
			return errCliente
		}
		if errMesa != nil {
			return errMesa
		}
		if !mesa.Disponivel {
			return &errReserva{status: http.StatusBadRequest, message: "Mesa não está disponível"}
		}

		reserva := models.Reserva{
			ClienteID:   cliente.ID,
			MesaID:      mesa.ID,
			DataReserva: req.DataReserva,
			Horario:     req.Horario,
			Status:      string(status),
		}
		if err := tx.Omit(clause.Associations).Create(&reserva).Error; err != nil {
			return err
		}
		if err := tx.Model(&mesa).Update("disponivel", false).Error; err != nil {
			return err
		}

		found, err := rc.find(tx, reserva.ID)
		created = found
		return err
	})
	if err != nil {
		rc.respond(c, "create reserva", err)
		return
	}

	utils.InfoLogger.Printf("Reserva %d created for mesa %d", created.ID, created.MesaID)
	utils.RespondJSON(c, http.StatusCreated, created)
}

// Update changes status, date and time. A cancelled reservation frees its
// table.
func (rc *ReservaController) Update(c *gin.Context) {
	id, ok := paramID(c, "Reserva não encontrada")
	if !ok {
		return
	}

	var req struct {
		DataReserva *string `json:"data_reserva"`
		Horario     *string `json:"horario"`
		Status      *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, msgDadosInvalidos)
		return
	}

	var updated *models.Reserva
	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		reserva, err := rc.find(tx, id)
		if err != nil {
			return err
		}

		if req.DataReserva != nil {
			if !validDate(*req.DataReserva) {
				return &errReserva{status: http.StatusBadRequest, message: msgDadosInvalidos}
			}
			reserva.DataReserva = *req.DataReserva
		}
		if req.Horario != nil {
			if !validTime(*req.Horario) {
				return &errReserva{status: http.StatusBadRequest, message: msgDadosInvalidos}
			}
			reserva.Horario = *req.Horario
		}
		if req.Status != nil {
			st, ok := models.ParseReservaStatus(*req.Status)
			if !ok {
				return &errReserva{status: http.StatusBadRequest, message: "Status inválido"}
			}
			reserva.Status = string(st)
		}

		if err := tx.Omit(clause.Associations).Save(reserva).Error; err != nil {
			return err
		}
		if reserva.Status == string(models.StatusCancelada) {
			if err := tx.Model(&models.Mesa{}).Where("id = ?", reserva.MesaID).Update("disponivel", true).Error; err != nil {
				return err
			}
		}

		updated, err = rc.find(tx, id)
		return err
	})
	if err != nil {
		rc.respond(c, "update reserva", err)
		return
	}

	utils.InfoLogger.Printf("Reserva %d updated (status=%s)", updated.ID, updated.Status)
	utils.RespondJSON(c, http.StatusOK, updated)
}

// Delete removes the reservation and frees its table.
func (rc *ReservaController) Delete(c *gin.Context) {
	id, ok := paramID(c, "Reserva não encontrada")
	if !ok {
		return
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		reserva, err := rc.find(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Model(&models.Mesa{}).Where("id = ?", reserva.MesaID).Update("disponivel", true).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Reserva{}, id).Error
	})
	if err != nil {
		rc.respond(c, "delete reserva", err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Reserva "+strconv.Itoa(id)+" excluída com sucesso")
}
