package family

import (
	"strings"
	"testing"

	"github.com/dukerupert/familytree/internal/model"
	"github.com/google/go-cmp/cmp"
)

func TestDefaultTree(t *testing.T) {
	tree := Default()

	if err := tree.Validate(); err != nil {
		t.Fatalf("default tree invalid: %v", err)
	}
	if got := tree.Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
	if got := tree.Root().Name; got != "Иван Петрович" {
		t.Errorf("root name = %q, want %q", got, "Иван Петрович")
	}
}

func TestWalkOrder(t *testing.T) {
	tree := Default()

	type visit struct {
		ID    string
		Depth int
	}
	var got []visit
	tree.Walk(func(m *model.FamilyMember, depth int) {
		got = append(got, visit{m.ID, depth})
	})

	want := []visit{
		{"1", 0},
		{"2", 1},
		{"4", 2},
		{"6", 3},
		{"7", 3},
		{"5", 2},
		{"3", 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestFind(t *testing.T) {
	tree := Default()

	m := tree.Find("6")
	if m == nil {
		t.Fatal("expected member 6, got nil")
	}
	if m.Name != "Дмитрий Александрович" {
		t.Errorf("name = %q, want %q", m.Name, "Дмитрий Александрович")
	}
	if m.Relationship != "Я" {
		t.Errorf("relationship = %q, want %q", m.Relationship, "Я")
	}
	if m.BirthYear != "1995" {
		t.Errorf("birth year = %q, want %q", m.BirthYear, "1995")
	}
	if m.DeathYear != "" || m.HasChildren() {
		t.Errorf("expected no death year and no children, got %q / %d", m.DeathYear, len(m.Children))
	}

	if got := tree.Find("99"); got != nil {
		t.Errorf("Find(99) = %+v, want nil", got)
	}
}

func TestFindReturnsLiveReference(t *testing.T) {
	tree := Default()
	parent := tree.Find("4")
	if parent == nil || len(parent.Children) != 2 {
		t.Fatalf("expected member 4 with two children, got %+v", parent)
	}
	if tree.Find("6") != parent.Children[0] {
		t.Error("Find should return the member stored in the tree, not a copy")
	}
}

func TestValidateDuplicateID(t *testing.T) {
	root := &model.FamilyMember{
		ID:   "1",
		Name: "Root",
		Children: []*model.FamilyMember{
			{ID: "2", Name: "A"},
			{ID: "2", Name: "B"},
		},
	}
	err := New(root).Validate()
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("error = %v, want duplicate id", err)
	}
}

func TestValidateEmptyID(t *testing.T) {
	root := &model.FamilyMember{ID: "", Name: "Nameless"}
	err := New(root).Validate()
	if err == nil || !strings.Contains(err.Error(), "empty id") {
		t.Errorf("error = %v, want empty id", err)
	}
}

func TestValidateCycle(t *testing.T) {
	root := &model.FamilyMember{ID: "1", Name: "Root"}
	child := &model.FamilyMember{ID: "2", Name: "Child"}
	root.Children = []*model.FamilyMember{child}
	child.Children = []*model.FamilyMember{root}

	tree := New(root)
	if got := tree.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	err := tree.Validate()
	if err == nil || !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error = %v, want cycle", err)
	}
}

func TestValidateSharedChild(t *testing.T) {
	shared := &model.FamilyMember{ID: "3", Name: "Shared"}
	root := &model.FamilyMember{
		ID:   "1",
		Name: "Root",
		Children: []*model.FamilyMember{
			{ID: "2", Name: "A", Children: []*model.FamilyMember{shared}},
			shared,
		},
	}
	err := New(root).Validate()
	if err == nil || !strings.Contains(err.Error(), "shared") {
		t.Errorf("error = %v, want shared", err)
	}
}

func TestValidateNilRoot(t *testing.T) {
	if err := New(nil).Validate(); err == nil {
		t.Error("expected error for nil root")
	}
}
