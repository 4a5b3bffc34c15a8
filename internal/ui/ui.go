// Package ui embeds the portal's HTML templates and static assets.
package ui

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed views/*.tmpl
var views embed.FS

//go:embed static
var static embed.FS

var funcs = template.FuncMap{
	// Articles are authored by administrators and rendered as stored.
	"markup": func(s string) template.HTML { return template.HTML(s) },
	"deref": func(p *int64) int64 {
		if p == nil {
			return 0
		}
		return *p
	},
}

// Templates parses every view. Each file is registered under its base name.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(views, "views/*.tmpl")
}

// Static returns the assets served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
