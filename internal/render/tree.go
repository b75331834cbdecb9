// Package render maps a family tree onto the nested view model that both the
// HTML templates and the terminal viewer draw.
package render

import "github.com/dukerupert/familytree/internal/model"

// Card is the summary shown for one member.
type Card struct {
	ID           string
	Name         string
	Relationship string
	Years        string
}

// Node is one rendered member: its card, the lines around it and its child
// row. A leaf has no children and no line beneath it.
type Node struct {
	Member *model.FamilyMember
	Depth  int
	Card   Card

	// Connector is the vertical line above the card linking it to the
	// parent's child row.
	Connector bool
	// Stem is the vertical line between the card and its child row.
	Stem bool
	// Span is the horizontal line across a child row of two or more.
	Span bool

	Children []Node
}

// Build renders m and its descendants. depth is 0 for the root.
func Build(m *model.FamilyMember, depth int) Node {
	n := Node{
		Member: m,
		Depth:  depth,
		Card: Card{
			ID:           m.ID,
			Name:         m.Name,
			Relationship: m.Relationship,
			Years:        m.Years(),
		},
		Connector: depth > 0,
	}

	if !m.HasChildren() {
		return n
	}

	n.Stem = true
	n.Span = len(m.Children) > 1
	n.Children = make([]Node, 0, len(m.Children))
	for _, c := range m.Children {
		n.Children = append(n.Children, Build(c, depth+1))
	}
	return n
}

func (n Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Count returns the number of nodes in the rendered subtree.
func Count(n Node) int {
	total := 1
	for _, c := range n.Children {
		total += Count(c)
	}
	return total
}

// Flatten lists the subtree in pre-order.
func Flatten(n Node) []Node {
	out := []Node{n}
	for _, c := range n.Children {
		out = append(out, Flatten(c)...)
	}
	return out
}
