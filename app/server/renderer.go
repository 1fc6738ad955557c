package server

import (
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

type TemplateRenderer struct {
	tmpl *template.Template
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	wrappedData := map[string]any{
		"Page": name,
		"Data": data,
	}
	err := t.tmpl.ExecuteTemplate(w, "layout.html", wrappedData)
	if err != nil {
		c.Logger().Error(err)
		return err
	}
	return nil
}

// NewTemplateRenderer parses the embedded templates. The asset func
// resolves a static file to its content-hashed URL.
func NewTemplateRenderer(assets *HashFS) *TemplateRenderer {
	funcMap := template.FuncMap{
		"asset": func(name string) string {
			return "/static/" + assets.FormatWithHash(name)
		},
	}
	tmpl := template.Must(template.New("").Funcs(funcMap).ParseFS(templateFs, "template/*.html"))
	return &TemplateRenderer{tmpl: tmpl}
}
