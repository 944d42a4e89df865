// Package views: template HTML + aset statis, di-embed ke binary.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/template/html/v2"

	"diporani_web/internals/features/home/content"
	helper "diporani_web/internals/helpers"
	"diporani_web/internals/helpers/dbtime"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Funcs: helper yang dipakai di template.
func Funcs() map[string]any {
	return map[string]any{
		"nav":       func() []content.NavItem { return content.Nav },
		"year":      func() int { return dbtime.ToWIB(time.Now()).Year() },
		"join":      strings.Join,
		"initials":  helper.Initials,
		"instagram": helper.InstagramURL,
	}
}

// NewEngine: nama template = path relatif tanpa ekstensi ("fragments/materi").
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err) // embed path salah = bug build
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(Funcs())
	return engine
}

// Static: aset css/js untuk di-mount di /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
