package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/resources"
	"github.com/yeremiapane/reserva-dashboard/services"
)

type AuthController struct {
	flow         *services.LoginFlow
	cookieSecure bool
}

func NewAuthController(flow *services.LoginFlow, cookieSecure bool) *AuthController {
	return &AuthController{flow: flow, cookieSecure: cookieSecure}
}

// LoginPage renders the login form. A visitor with a session goes straight
// to the dashboard.
func (ac *AuthController) LoginPage(c *gin.Context) {
	store := services.NewCookieStorage(c, ac.cookieSecure)
	if services.Authenticated(store) {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", newPage(c, store, "Login", "login", ac.cookieSecure))
}

// Login submits the credentials. On success the session cookies are set and
// the browser is sent to the dashboard; otherwise the form is shown again.
func (ac *AuthController) Login(c *gin.Context) {
	store := services.NewCookieStorage(c, ac.cookieSecure)
	email := c.PostForm("email")

	user, err := ac.flow.Submit(c.Request.Context(), store, email, c.PostForm("senha"))
	notice := services.LoginNotice(user, err)
	if err != nil {
		page := newPage(c, store, "Login", "login", ac.cookieSecure)
		page.Email = email
		page.Notices.Notify(notice)
		c.HTML(http.StatusOK, "login.html", page)
		return
	}

	setFlash(c, notice, ac.cookieSecure)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Throttled answers a login attempt rejected by the rate limiter.
func (ac *AuthController) Throttled(c *gin.Context) {
	store := services.NewCookieStorage(c, ac.cookieSecure)
	page := newPage(c, store, "Login", "login", ac.cookieSecure)
	page.Email = c.PostForm("email")
	page.Notices.Notify(resources.Notice{
		Variant:     resources.VariantDestructive,
		Title:       "Erro",
		Description: "Muitas tentativas de login, aguarde um momento",
	})
	c.HTML(http.StatusTooManyRequests, "login.html", page)
}

func (ac *AuthController) Logout(c *gin.Context) {
	services.Logout(services.NewCookieStorage(c, ac.cookieSecure))
	c.Redirect(http.StatusFound, "/login")
}
