package family

import (
	"errors"
	"fmt"

	"github.com/dukerupert/familytree/internal/model"
)

// Tree is a read-only view over a rooted FamilyMember structure. It is never
// mutated after New, so it can be shared freely between goroutines.
type Tree struct {
	root *model.FamilyMember
	byID map[string]*model.FamilyMember
	size int
}

// New indexes the tree rooted at root. When ids collide the first member in
// depth-first order wins the index slot; Validate reports the collision.
func New(root *model.FamilyMember) *Tree {
	t := &Tree{
		root: root,
		byID: make(map[string]*model.FamilyMember),
	}
	t.Walk(func(m *model.FamilyMember, _ int) {
		t.size++
		if _, ok := t.byID[m.ID]; !ok {
			t.byID[m.ID] = m
		}
	})
	return t
}

func (t *Tree) Root() *model.FamilyMember {
	return t.root
}

// Len returns the number of members in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Find returns the member with the given id, or nil.
func (t *Tree) Find(id string) *model.FamilyMember {
	return t.byID[id]
}

// Walk visits every member depth-first in pre-order, children in data order.
// Members already visited are not descended into again.
func (t *Tree) Walk(fn func(m *model.FamilyMember, depth int)) {
	seen := make(map[*model.FamilyMember]bool)
	var visit func(m *model.FamilyMember, depth int)
	visit = func(m *model.FamilyMember, depth int) {
		if m == nil || seen[m] {
			return
		}
		seen[m] = true
		fn(m, depth)
		for _, c := range m.Children {
			visit(c, depth+1)
		}
	}
	visit(t.root, 0)
}

// Validate checks the structural assumptions the renderers rely on: every
// member has a non-empty unique id and no member is reachable twice.
func (t *Tree) Validate() error {
	if t.root == nil {
		return errors.New("family tree has no root")
	}

	var errs []error
	ids := make(map[string]bool)
	onPath := make(map[*model.FamilyMember]bool)
	seen := make(map[*model.FamilyMember]bool)

	var check func(m *model.FamilyMember)
	check = func(m *model.FamilyMember) {
		if onPath[m] {
			errs = append(errs, fmt.Errorf("member %q: cycle detected", m.ID))
			return
		}
		if seen[m] {
			errs = append(errs, fmt.Errorf("member %q: shared by more than one parent", m.ID))
			return
		}
		seen[m] = true

		switch {
		case m.ID == "":
			errs = append(errs, fmt.Errorf("member %q: empty id", m.Name))
		case ids[m.ID]:
			errs = append(errs, fmt.Errorf("member %q: duplicate id", m.ID))
		}
		ids[m.ID] = true

		onPath[m] = true
		for _, c := range m.Children {
			if c == nil {
				errs = append(errs, fmt.Errorf("member %q: nil child", m.ID))
				continue
			}
			check(c)
		}
		delete(onPath, m)
	}
	check(t.root)

	return errors.Join(errs...)
}
