// Package legacyform serves the standalone public reservation form. It
// shares nothing with the dashboard besides the API it posts to.
package legacyform

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/middlewares"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/utils"
	"github.com/yeremiapane/reserva-dashboard/views"
)

const saveFailed = "Erro ao salvar reserva"

type Submitter interface {
	SubmitLegacyReserva(ctx context.Context, r models.LegacyReserva) (*models.LegacyResponse, error)
}

type form struct {
	NomeCliente     string `form:"nome_cliente"`
	TelefoneCliente string `form:"telefone_cliente"`
	Data            string `form:"data"`
	Hora            string `form:"hora"`
	NumeroPessoas   int    `form:"numero_pessoas"`
}

type page struct {
	Form     form
	Mensagem string
}

type Handler struct {
	api Submitter
}

func NewHandler(api Submitter) *Handler {
	return &Handler{api: api}
}

func (h *Handler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "legacy.html", page{})
}

// Submit posts the reservation and shows the server's mensagem, or a fixed
// error text for any failure.
func (h *Handler) Submit(c *gin.Context) {
	var f form
	if err := c.ShouldBind(&f); err != nil {
		utils.InfoLogger.Printf("Invalid legacy form: %v", err)
		c.HTML(http.StatusOK, "legacy.html", page{Form: f, Mensagem: saveFailed})
		return
	}

	resp, err := h.api.SubmitLegacyReserva(c.Request.Context(), models.LegacyReserva{
		NomeCliente:     f.NomeCliente,
		TelefoneCliente: f.TelefoneCliente,
		Data:            f.Data,
		Hora:            f.Hora,
		NumeroPessoas:   f.NumeroPessoas,
	})
	if err != nil {
		utils.ErrorLogger.Printf("Error saving legacy reserva: %v", err)
		c.HTML(http.StatusOK, "legacy.html", page{Form: f, Mensagem: saveFailed})
		return
	}

	c.HTML(http.StatusOK, "legacy.html", page{Mensagem: resp.Mensagem})
}

func SetupRouter(api Submitter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())
	r.SetHTMLTemplate(views.Legacy())

	h := NewHandler(api)
	r.GET("/", h.Show)
	r.POST("/", h.Submit)
	return r
}
