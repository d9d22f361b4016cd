// Package views holds the embedded HTML templates of the dashboard and the
// legacy reservation form.
package views

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/yeremiapane/reserva-dashboard/models"
	"github.com/yeremiapane/reserva-dashboard/resources"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"itoa":          strconv.Itoa,
	"statusVariant": resources.StatusVariant,
	"statuses":      func() []models.ReservaStatus { return models.ReservaStatuses },
	"str":           func(s models.ReservaStatus) string { return string(s) },
}

// Dashboard parses every page of the dashboard.
func Dashboard() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS,
		"templates/layout.html",
		"templates/login.html",
		"templates/dashboard.html",
		"templates/clientes.html",
		"templates/mesas.html",
		"templates/funcionarios.html",
		"templates/reservas.html",
		"templates/confirm.html",
	))
}

// Legacy parses the standalone reservation form.
func Legacy() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/legacy.html"))
}
