// Package view holds the HTML rendering layer: an echo.Renderer over
// html/template with embedded templates, and the view models the page
// handlers build from loader results. View models carry pre-formatted
// strings so templates stay logic-free.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Renderer satisfies echo.Renderer for all dashboard pages.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// MustRenderer is NewRenderer that panics on parse failure. Templates are
// embedded, so a failure here is a build defect and always fatal.
func MustRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic("view: " + err.Error())
	}
	return r
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// Static returns the embedded static asset tree rooted at its contents.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("view: " + err.Error())
	}
	return sub
}
