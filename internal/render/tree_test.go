package render

import (
	"testing"

	"github.com/dukerupert/familytree/internal/family"
	"github.com/dukerupert/familytree/internal/model"
	"github.com/google/go-cmp/cmp"
)

// shape reduces a rendered node to ids for structural comparison.
type shape struct {
	ID       string
	Children []shape
}

func shapeOf(n Node) shape {
	s := shape{ID: n.Card.ID}
	for _, c := range n.Children {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

func TestBuildOneNodePerMember(t *testing.T) {
	tree := family.Default()
	root := Build(tree.Root(), 0)

	if got, want := Count(root), tree.Len(); got != want {
		t.Errorf("Count() = %d, want %d", got, want)
	}
}

func TestBuildNestingMatchesData(t *testing.T) {
	root := Build(family.Default().Root(), 0)

	want := shape{ID: "1", Children: []shape{
		{ID: "2", Children: []shape{
			{ID: "4", Children: []shape{{ID: "6"}, {ID: "7"}}},
			{ID: "5"},
		}},
		{ID: "3"},
	}}
	if diff := cmp.Diff(want, shapeOf(root)); diff != "" {
		t.Errorf("tree shape mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLines(t *testing.T) {
	root := Build(family.Default().Root(), 0)
	byID := make(map[string]Node)
	for _, n := range Flatten(root) {
		byID[n.Card.ID] = n
	}

	if root.Connector {
		t.Error("root should have no connector above it")
	}
	if !root.Stem || !root.Span {
		t.Errorf("root stem/span = %v/%v, want true/true", root.Stem, root.Span)
	}

	leaf := byID["6"]
	if !leaf.Connector {
		t.Error("leaf 6 should be connected to its parent")
	}
	if leaf.HasChildren() || leaf.Stem || leaf.Span {
		t.Errorf("leaf 6 should render no child row and no line beneath it: %+v", leaf)
	}

	if n := byID["4"]; n.Depth != 2 {
		t.Errorf("depth of 4 = %d, want 2", n.Depth)
	}
}

func TestBuildSingleChildHasNoSpan(t *testing.T) {
	m := &model.FamilyMember{
		ID:       "p",
		Name:     "Parent",
		Children: []*model.FamilyMember{{ID: "c", Name: "Child"}},
	}
	n := Build(m, 0)
	if !n.Stem {
		t.Error("expected stem above single child")
	}
	if n.Span {
		t.Error("single child row should have no horizontal span")
	}
}

func TestBuildCardYears(t *testing.T) {
	root := Build(family.Default().Root(), 0)
	byID := make(map[string]Node)
	for _, n := range Flatten(root) {
		byID[n.Card.ID] = n
	}

	tests := map[string]string{
		"1": "1920 - 1995",
		"3": "1948 - 2010",
		"6": "1995",
	}
	for id, want := range tests {
		if got := byID[id].Card.Years; got != want {
			t.Errorf("card %s years = %q, want %q", id, got, want)
		}
	}
}

func TestFlattenPreOrder(t *testing.T) {
	root := Build(family.Default().Root(), 0)
	var ids []string
	for _, n := range Flatten(root) {
		ids = append(ids, n.Card.ID)
	}
	want := []string{"1", "2", "4", "6", "7", "5", "3"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("flatten order mismatch (-want +got):\n%s", diff)
	}
}
