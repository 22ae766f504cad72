// Package web holds the server-rendered pages: the public documentation page
// and the admin login and dashboard shells.
package web

import (
	"embed"
	"html/template"
	"io"

	"lunadocs/internal/models"
	"lunadocs/internal/services"
)

//go:embed templates/*.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "templates/*.html"))

type DocsPage struct {
	Title    string
	Nav      []models.NavGroup
	Sections []services.RenderedSection
	Status   models.StorageStatus
}

type AdminPage struct {
	Title    string
	Status   models.StorageStatus
	Username string
}

func RenderDocs(w io.Writer, p DocsPage) error {
	return pages.ExecuteTemplate(w, "docs.html", p)
}

func RenderLogin(w io.Writer, p AdminPage) error {
	return pages.ExecuteTemplate(w, "admin_login.html", p)
}

func RenderDashboard(w io.Writer, p AdminPage) error {
	return pages.ExecuteTemplate(w, "admin_dashboard.html", p)
}
