package handler

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dukerupert/familytree/internal/dialog"
	"github.com/dukerupert/familytree/internal/family"
	"github.com/dukerupert/familytree/internal/render"
	"github.com/dukerupert/familytree/web"
)

type TemplateHandler struct {
	tree      *family.Tree
	rendered  render.Node
	templates *template.Template
	logger    *slog.Logger
}

func NewTemplateHandler(tree *family.Tree, tmpl *template.Template, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{
		tree:      tree,
		rendered:  render.Build(tree.Root(), 0),
		templates: tmpl,
		logger:    logger,
	}
}

// Index renders the full page. With ?member=<id> the detail dialog is
// rendered already open, so cards work as plain links without JavaScript.
func (h *TemplateHandler) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	var sel dialog.Selection
	if id := r.URL.Query().Get("member"); id != "" {
		m := h.tree.Find(id)
		if m == nil {
			http.Error(w, "family member not found", http.StatusNotFound)
			return
		}
		sel.Select(m)
	}

	data := map[string]any{
		"Title":    family.Title,
		"Subtitle": family.Subtitle,
		"Tree":     h.rendered,
		"Dialog":   web.DialogData{View: sel.View()},
	}
	h.render(w, "layout", data)
}

// MemberDialog returns the dialog fragment opened on one member.
func (h *TemplateHandler) MemberDialog(w http.ResponseWriter, r *http.Request) {
	m := h.tree.Find(r.PathValue("id"))
	if m == nil {
		http.Error(w, "family member not found", http.StatusNotFound)
		return
	}

	h.renderPartial(w, "dialog", web.DialogData{View: dialog.Details(m)})
}

// CloseDialog returns the empty, closed dialog fragment.
func (h *TemplateHandler) CloseDialog(w http.ResponseWriter, r *http.Request) {
	h.renderPartial(w, "dialog", web.DialogData{})
}

func (h *TemplateHandler) render(w http.ResponseWriter, name string, data any) {
	// Render into a buffer first so a failed template never leaves a
	// half-written page behind a 200.
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("template error", "template", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("write response", "template", name, "error", err)
	}
}

func (h *TemplateHandler) renderPartial(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("template error", "template", name, "error", err)
		w.Write([]byte(`<div class="alert alert-error">Template error</div>`))
	}
}
