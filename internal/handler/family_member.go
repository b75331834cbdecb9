package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dukerupert/familytree/internal/family"
)

type FamilyMemberHandler struct {
	tree   *family.Tree
	logger *slog.Logger
}

func NewFamilyMemberHandler(tree *family.Tree, logger *slog.Logger) *FamilyMemberHandler {
	return &FamilyMemberHandler{tree: tree, logger: logger}
}

// Tree returns the whole family tree as nested JSON.
func (h *FamilyMemberHandler) Tree(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tree.Root())
}

// Get returns one member, including its descendants.
func (h *FamilyMemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	m := h.tree.Find(r.PathValue("id"))
	if m == nil {
		h.logger.Debug("family member not found", "id", r.PathValue("id"))
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "family member not found"})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
