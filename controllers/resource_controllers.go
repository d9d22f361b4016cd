package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/reserva-dashboard/apiclient"
	"github.com/yeremiapane/reserva-dashboard/resources"
	"github.com/yeremiapane/reserva-dashboard/services"
	"github.com/yeremiapane/reserva-dashboard/utils"
)

// Screen describes one resource page of the dashboard.
type Screen[R any, F any] struct {
	Kind     resources.Kind[R, F]
	Path     string
	Title    string
	Active   string
	Template string
	Backend  func(api *apiclient.Client) resources.Backend[R]
	// Prepare loads whatever else the open dialog needs, such as pick lists.
	Prepare func(ctx context.Context, api *apiclient.Client, s *resources.Session[R, F], page *Page)
}

// ResourceController serves the list, the create/edit dialog and the
// delete confirmation of a Screen.
type ResourceController[R any, F any] struct {
	api          *apiclient.Client
	cookieSecure bool
	screen       Screen[R, F]
}

func NewResourceController[R any, F any](api *apiclient.Client, cookieSecure bool, screen Screen[R, F]) *ResourceController[R, F] {
	return &ResourceController[R, F]{api: api, cookieSecure: cookieSecure, screen: screen}
}

func (rc *ResourceController[R, F]) begin(c *gin.Context) (*resources.Session[R, F], *Page, *apiclient.Client) {
	store := services.NewCookieStorage(c, rc.cookieSecure)
	page := newPage(c, store, rc.screen.Title, rc.screen.Active, rc.cookieSecure)
	token, _ := store.Get(services.TokenKey)
	api := rc.api.WithToken(token)

	sess := resources.NewSession(rc.screen.Kind, rc.screen.Backend(api), &page.Notices)
	page.Screen = sess
	return sess, page, api
}

func (rc *ResourceController[R, F]) render(c *gin.Context, sess *resources.Session[R, F], page *Page, api *apiclient.Client) {
	if sess.Open {
		if record, ok := sess.Target.Record(); ok {
			page.EditID = rc.screen.Kind.ID(record)
		}
		if rc.screen.Prepare != nil {
			rc.screen.Prepare(c.Request.Context(), api, sess, page)
		}
	}
	c.HTML(http.StatusOK, rc.screen.Template, page)
}

// done answers a successful mutation with a redirect back to the list, so a
// refresh does not repeat it. The latest notice travels in the flash cookie.
func (rc *ResourceController[R, F]) done(c *gin.Context, page *Page) {
	if n := len(page.Notices); n > 0 {
		setFlash(c, page.Notices[n-1], rc.cookieSecure)
	}
	c.Redirect(http.StatusSeeOther, rc.screen.Path)
}

func (rc *ResourceController[R, F]) notFound(page *Page) {
	page.Notices.Notify(resources.Notice{
		Variant:     resources.VariantDestructive,
		Title:       "Erro na operação",
		Description: "Registro não encontrado",
	})
}

// Index lists the collection. ?novo=1 opens the create dialog and
// ?editar={id} the edit dialog.
func (rc *ResourceController[R, F]) Index(c *gin.Context) {
	sess, page, api := rc.begin(c)
	_ = sess.Load(c.Request.Context())

	if c.Query("novo") != "" {
		sess.OpenCreate()
	} else if raw := c.Query("editar"); raw != "" {
		id, err := strconv.Atoi(raw)
		record, ok := sess.Find(id)
		if err != nil || !ok {
			rc.notFound(page)
		} else {
			sess.OpenEdit(record)
		}
	}

	rc.render(c, sess, page, api)
}

// Submit creates, or updates when the form carries an id. Success redirects
// to the list; a failure renders the dialog again with the typed values.
func (rc *ResourceController[R, F]) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sess, page, api := rc.begin(c)
	_ = sess.Load(ctx)

	if raw := c.PostForm("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		record, ok := sess.Find(id)
		if err != nil || !ok {
			rc.notFound(page)
			rc.render(c, sess, page, api)
			return
		}
		sess.OpenEdit(record)
	} else {
		sess.OpenCreate()
	}

	var form F
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorLogger.Printf("Error binding %s form: %v", rc.screen.Kind.Name, err)
	}
	sess.Form = form

	if err := sess.Submit(ctx); err != nil {
		utils.InfoLogger.Printf("Submit %s failed: %v", rc.screen.Kind.Name, err)
		rc.render(c, sess, page, api)
		return
	}
	rc.done(c, page)
}

// Delete asks for confirmation first. The confirmation page posts back
// with confirmar=sim.
func (rc *ResourceController[R, F]) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sess, page, api := rc.begin(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, rc.screen.Path)
		return
	}

	confirmed := c.PostForm("confirmar") == "sim"
	var prompt string
	deleted, err := sess.Delete(ctx, id, resources.ConfirmFunc(func(p string) bool {
		prompt = p
		return confirmed
	}))

	if !confirmed {
		page.Prompt = prompt
		page.ConfirmAction = rc.screen.Path + "/" + strconv.Itoa(id) + "/excluir"
		page.CancelURL = rc.screen.Path
		c.HTML(http.StatusOK, "confirm.html", page)
		return
	}

	if deleted {
		rc.done(c, page)
		return
	}
	if err != nil {
		utils.InfoLogger.Printf("Delete failed: %v", err)
	}
	_ = sess.Load(ctx)
	rc.render(c, sess, page, api)
}

// Register mounts the screen's routes on g.
func (rc *ResourceController[R, F]) Register(g gin.IRoutes) {
	g.GET(rc.screen.Path, rc.Index)
	g.POST(rc.screen.Path, rc.Submit)
	g.POST(rc.screen.Path+"/:id/excluir", rc.Delete)
}
