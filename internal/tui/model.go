// Package tui is the terminal viewer: the family tree drawn as nested cards
// with a detail dialog for the selected member.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dukerupert/familytree/internal/dialog"
	"github.com/dukerupert/familytree/internal/family"
	"github.com/dukerupert/familytree/internal/model"
	"github.com/dukerupert/familytree/internal/render"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	panStep       = 8
)

// Model is the root bubbletea model for the viewer.
type Model struct {
	title    string
	subtitle string

	nodes  []render.Node // pre-order
	parent []int         // index into nodes, -1 for the root
	root   render.Node

	cursor    int
	selection dialog.Selection
	boxes     []box
	treeWidth int
	xOffset   int // owned here; the viewport only mirrors it

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	width    int
	height   int
}

// NewModel creates a viewer for tree.
func NewModel(tree *family.Tree, title, subtitle string) Model {
	root := render.Build(tree.Root(), 0)
	nodes := render.Flatten(root)

	m := Model{
		title:    title,
		subtitle: subtitle,
		root:     root,
		nodes:    nodes,
		parent:   parents(root),
		help:     help.New(),
		keys:     defaultKeyMap(),
		viewport: viewport.New(defaultWidth, defaultHeight),
	}
	m.viewport.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}
	m.viewport.SetHorizontalStep(panStep)
	m.resize(defaultWidth, defaultHeight)
	return m
}

// parents maps each pre-order index to its parent's index.
func parents(root render.Node) []int {
	var out []int
	var visit func(n render.Node, parent int)
	visit = func(n render.Node, parent int) {
		idx := len(out)
		out = append(out, parent)
		for _, c := range n.Children {
			visit(c, idx)
		}
	}
	visit(root, -1)
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the member shown in the dialog, or nil when it is closed.
func (m Model) Selected() *model.FamilyMember {
	return m.selection.Current()
}

// Cursor returns the id of the card under the cursor.
func (m Model) Cursor() string {
	return m.nodes[m.cursor].Card.ID
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.selection.IsOpen() {
		// The dialog is modal: only dismissal keys apply.
		if key.Matches(msg, m.keys.Close, m.keys.Quit, m.keys.Open) {
			m.selection.Clear()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.selection.Select(m.nodes[m.cursor].Member)
	case key.Matches(msg, m.keys.Parent):
		if p := m.parent[m.cursor]; p >= 0 {
			m.moveTo(p)
		}
	case key.Matches(msg, m.keys.FirstChild):
		if m.nodes[m.cursor].HasChildren() {
			m.moveTo(m.cursor + 1)
		}
	case key.Matches(msg, m.keys.PrevSib):
		if i := m.sibling(-1); i >= 0 {
			m.moveTo(i)
		}
	case key.Matches(msg, m.keys.NextSib):
		if i := m.sibling(1); i >= 0 {
			m.moveTo(i)
		}
	case key.Matches(msg, m.keys.Next):
		m.moveTo((m.cursor + 1) % len(m.nodes))
	case key.Matches(msg, m.keys.Prev):
		m.moveTo((m.cursor + len(m.nodes) - 1) % len(m.nodes))
	case key.Matches(msg, m.keys.PanLeft):
		m.pan(-panStep)
	case key.Matches(msg, m.keys.PanRight):
		m.pan(panStep)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// sibling returns the index of the previous (dir < 0) or next sibling of the
// cursor, or -1.
func (m Model) sibling(dir int) int {
	p := m.parent[m.cursor]
	if p < 0 {
		return -1
	}
	var sibs []int
	for i, pi := range m.parent {
		if pi == p {
			sibs = append(sibs, i)
		}
	}
	for j, i := range sibs {
		if i != m.cursor {
			continue
		}
		if k := j + dir; k >= 0 && k < len(sibs) {
			return sibs[k]
		}
	}
	return -1
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress {
		switch {
		case msg.Button == tea.MouseButtonWheelLeft,
			msg.Shift && msg.Button == tea.MouseButtonWheelUp:
			m.pan(-panStep)
			return m, nil
		case msg.Button == tea.MouseButtonWheelRight,
			msg.Shift && msg.Button == tea.MouseButtonWheelDown:
			m.pan(panStep)
			return m, nil
		}
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	// A click anywhere while the dialog is up dismisses it.
	if m.selection.IsOpen() {
		m.selection.Clear()
		return m, nil
	}

	x := msg.X + m.xOffset
	y := msg.Y - lipgloss.Height(m.headerView()) + m.viewport.YOffset
	if i := m.cardAt(x, y); i >= 0 {
		m.moveTo(i)
		m.selection.Select(m.nodes[i].Member)
	}
	return m, nil
}

// cardAt returns the pre-order index of the card at content position x, y.
func (m Model) cardAt(x, y int) int {
	for _, b := range m.boxes {
		if !b.contains(x, y) {
			continue
		}
		for i, n := range m.nodes {
			if n.Card.ID == b.id {
				return i
			}
		}
	}
	return -1
}

func (m *Model) moveTo(i int) {
	m.cursor = i
	m.refresh()

	// Keep the cursor card on screen.
	for _, b := range m.boxes {
		if b.id != m.Cursor() {
			continue
		}
		if b.y < m.viewport.YOffset || b.y+b.h > m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(b.y)
		}
		switch {
		case b.x < m.xOffset || b.w > m.viewport.Width:
			m.setXOffset(b.x)
		case b.x+b.w > m.xOffset+m.viewport.Width:
			m.setXOffset(b.x + b.w - m.viewport.Width)
		}
	}
}

// pan scrolls the tree sideways by dx columns.
func (m *Model) pan(dx int) {
	m.setXOffset(m.xOffset + dx)
}

// setXOffset clamps n to the scrollable range and applies it to the viewport.
func (m *Model) setXOffset(n int) {
	m.xOffset = min(max(n, 0), max(m.treeWidth-m.viewport.Width, 0))
	m.viewport.SetXOffset(m.xOffset)
}

func (m *Model) refresh() {
	b := layout(m.root, m.Cursor())
	m.boxes = b.boxes

	content := RenderTree(m.root, m.Cursor())
	m.treeWidth = widest(strings.Split(content, "\n"))
	m.viewport.SetContent(content)
	m.setXOffset(m.xOffset)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-lipgloss.Height(m.headerView())-lipgloss.Height(m.footerView()), 1)
	m.refresh()
}

func (m Model) headerView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title),
		subtitleStyle.Render(m.subtitle),
		"",
	)
}

func (m Model) footerView() string {
	return m.help.View(m.keys)
}

func (m Model) View() string {
	if v := m.selection.View(); v != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, renderDialog(v))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		m.viewport.View(),
		m.footerView(),
	)
}
