package controllers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/resources"
	"github.com/yeremiapane/reserva-dashboard/services"
)

const flashCookie = "aviso"

// Page is the data every dashboard template renders from.
type Page struct {
	Title   string
	Active  string
	User    *models.Funcionario
	Notices resources.Notices

	// Login
	Email string

	// Dashboard
	Stats services.Stats

	// Resource screens
	Screen   interface{}
	EditID   int
	Clientes []models.Cliente
	Mesas    []models.Mesa

	// Delete confirmation
	Prompt        string
	ConfirmAction string
	CancelURL     string
}

func newPage(c *gin.Context, store services.Storage, title, active string, secure bool) *Page {
	p := &Page{Title: title, Active: active}
	p.User, _ = services.CurrentUser(store)
	if n, ok := popFlash(c, secure); ok {
		p.Notices.Notify(n)
	}
	return p
}

// setFlash keeps a notice for the page rendered after a redirect.
func setFlash(c *gin.Context, n resources.Notice, secure bool) {
	raw, err := json.Marshal(n)
	if err != nil {
		return
	}
	c.SetCookie(flashCookie, string(raw), 60, "/", "", secure, true)
}

// popFlash reads the pending notice and clears it. The clearing cookie must
// carry the same attributes as the one setFlash wrote.
func popFlash(c *gin.Context, secure bool) (resources.Notice, bool) {
	var n resources.Notice
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return n, false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", secure, true)
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return n, false
	}
	return n, true
}
