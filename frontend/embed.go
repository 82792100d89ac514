package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages rendered inside layout.html
var pageNames = []string{"home", "prices", "combos", "schedule", "login", "account"}

// Templates maps a page name to its parsed template set
type Templates map[string]*template.Template

// LoadTemplates parses every page together with the shared layout
func LoadTemplates(funcs template.FuncMap) (Templates, error) {
	result := make(Templates, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			path.Join("templates", name+".html"),
		)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to parse page template", goerr.V("page", name))
		}
		result[name] = tmpl
	}
	return result, nil
}

// StaticFS returns the embedded static assets for HTTP serving
func StaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
