// Package web carries the page templates and static assets compiled into
// the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/dukerupert/familytree/internal/dialog"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// DialogData is the input of the "dialog" template. OOB marks the fragment
// for an htmx out-of-band swap when it is pushed over the websocket.
type DialogData struct {
	View *dialog.View
	OOB  bool
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is like Templates but panics on a parse error. The
// templates are compiled in, so an error here is a build defect.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static returns the embedded static assets rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
