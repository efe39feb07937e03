// Package views holds the page templates and static assets, embedded into the binary.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static serves the files under static/ at its root.
var Static = mustSub(staticFS, "static")

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

var funcs = template.FuncMap{
	"shortDate": func(t time.Time) string {
		return t.Format("1/2/2006")
	},
	"longDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
	"isoDate": func(t time.Time) string {
		return t.Format(time.RFC3339)
	},
}

// Templates parses every page template.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
