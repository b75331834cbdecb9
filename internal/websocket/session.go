package websocket

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"github.com/dukerupert/familytree/internal/dialog"
	"github.com/dukerupert/familytree/internal/family"
	"github.com/dukerupert/familytree/web"
)

const (
	ActionSelect = "select"
	ActionClose  = "close"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownMember = errors.New("unknown family member")
)

// Event is a UI event sent by the page. The htmx ws extension adds a
// HEADERS object to every payload, which is ignored.
type Event struct {
	Action   string `json:"action"`
	MemberID string `json:"member_id"`
}

// Session is the per-connection state behind one open page: which member
// the detail dialog shows. Events are handled one at a time by the
// connection's read loop.
type Session struct {
	tree      *family.Tree
	templates *template.Template
	selection dialog.Selection
}

func NewSession(tree *family.Tree, tmpl *template.Template) *Session {
	return &Session{tree: tree, templates: tmpl}
}

// Selection returns the session's dialog state.
func (s *Session) Selection() *dialog.Selection {
	return &s.selection
}

// Handle applies one raw event and returns the dialog fragment to push back.
// On error the selection is left unchanged.
func (s *Session) Handle(data []byte) ([]byte, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if err := s.Apply(ev); err != nil {
		return nil, err
	}
	return s.Render()
}

// Apply moves the selection according to ev.
func (s *Session) Apply(ev Event) error {
	switch ev.Action {
	case ActionSelect:
		m := s.tree.Find(ev.MemberID)
		if m == nil {
			return fmt.Errorf("%w: %q", ErrUnknownMember, ev.MemberID)
		}
		s.selection.Select(m)
	case ActionClose:
		s.selection.Clear()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, ev.Action)
	}
	return nil
}

// Render returns the dialog fragment for the current selection, marked for
// an out-of-band swap.
func (s *Session) Render() ([]byte, error) {
	var buf bytes.Buffer
	data := web.DialogData{View: s.selection.View(), OOB: true}
	if err := s.templates.ExecuteTemplate(&buf, "dialog", data); err != nil {
		return nil, fmt.Errorf("render dialog: %w", err)
	}
	return buf.Bytes(), nil
}
