package server

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/dukerupert/familytree/internal/family"
	"github.com/dukerupert/familytree/internal/handler"
	"github.com/dukerupert/familytree/internal/middleware"
	ws "github.com/dukerupert/familytree/internal/websocket"
	"github.com/dukerupert/familytree/web"
)

type Server struct {
	tree            *family.Tree
	templates       *template.Template
	static          fs.FS
	hub             *ws.Hub
	familyMemberH   *handler.FamilyMemberHandler
	templateHandler *handler.TemplateHandler
	logger          *slog.Logger
}

func New(tree *family.Tree, logger *slog.Logger) *Server {
	tmpl := web.MustTemplates()

	return &Server{
		tree:            tree,
		templates:       tmpl,
		static:          web.Static(),
		hub:             ws.NewHub(logger.With("component", "websocket")),
		familyMemberH:   handler.NewFamilyMemberHandler(tree, logger.With("component", "family_member")),
		templateHandler: handler.NewTemplateHandler(tree, tmpl, logger.With("component", "template")),
		logger:          logger,
	}
}

// Hub returns the websocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(s.static)))
	mux.HandleFunc("GET /health", s.healthHandler)

	// API routes
	mux.HandleFunc("GET /api/tree", s.familyMemberH.Tree)
	mux.HandleFunc("GET /api/family-members/{id}", s.familyMemberH.Get)

	// Page routes
	mux.HandleFunc("GET /", s.templateHandler.Index)

	// Dialog partials (HTMX)
	mux.HandleFunc("GET /partials/members/{id}", s.templateHandler.MemberDialog)
	mux.HandleFunc("GET /partials/dialog/close", s.templateHandler.CloseDialog)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.tree, s.templates))

	return middleware.RequestLogger(s.logger.With("component", "http"))(mux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"members": s.tree.Len(),
		"clients": s.hub.ClientCount(),
	})
}
