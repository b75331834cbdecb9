package model

import "strings"

// FamilyMember is one person in the genealogical tree. Each member owns its
// children exclusively; the structure is a finite rooted tree.
type FamilyMember struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BirthYear    string          `json:"birth_year,omitempty"`
	DeathYear    string          `json:"death_year,omitempty"`
	Relationship string          `json:"relationship"`
	Photo        string          `json:"photo,omitempty"`
	Children     []*FamilyMember `json:"children,omitempty"`
}

func (m *FamilyMember) HasChildren() bool {
	return m != nil && len(m.Children) > 0
}

// Years returns the lifespan line shown on a card: the birth year, followed by
// " - <death>" when a death year is known. Empty when neither is set.
func (m *FamilyMember) Years() string {
	switch {
	case m.BirthYear != "" && m.DeathYear != "":
		return m.BirthYear + " - " + m.DeathYear
	case m.DeathYear != "":
		return "- " + m.DeathYear
	default:
		return m.BirthYear
	}
}

// ChildNames joins the names of direct children with ", ".
func (m *FamilyMember) ChildNames() string {
	if !m.HasChildren() {
		return ""
	}
	names := make([]string, 0, len(m.Children))
	for _, c := range m.Children {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
