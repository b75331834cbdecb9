// Package dialog holds the "currently inspected member" state behind the
// detail dialog and the view of that member the dialog shows.
package dialog

import "github.com/dukerupert/familytree/internal/model"

// State is the dialog's visibility.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Selection tracks which member the dialog shows. It is not safe for
// concurrent use; each event loop owns its own Selection.
type Selection struct {
	current *model.FamilyMember
}

// Select opens the dialog on m. Selecting nil closes it.
func (s *Selection) Select(m *model.FamilyMember) {
	s.current = m
}

// Clear closes the dialog.
func (s *Selection) Clear() {
	s.current = nil
}

// Current returns the selected member, or nil when the dialog is closed.
func (s *Selection) Current() *model.FamilyMember {
	return s.current
}

func (s *Selection) State() State {
	if s.current == nil {
		return Closed
	}
	return Open
}

func (s *Selection) IsOpen() bool {
	return s.State() == Open
}

// View is what the dialog displays for one member. Empty optional fields
// are left out of the dialog.
type View struct {
	ID           string
	Name         string
	Relationship string
	BirthYear    string
	DeathYear    string
	Children     string
}

// Details builds the dialog view for m, or nil when nothing is selected.
func Details(m *model.FamilyMember) *View {
	if m == nil {
		return nil
	}
	return &View{
		ID:           m.ID,
		Name:         m.Name,
		Relationship: m.Relationship,
		BirthYear:    m.BirthYear,
		DeathYear:    m.DeathYear,
		Children:     m.ChildNames(),
	}
}

// View returns the dialog view for the current selection.
func (s *Selection) View() *View {
	return Details(s.current)
}
