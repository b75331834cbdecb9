package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dukerupert/familytree/internal/render"
)

// box is the screen area of one card, relative to the top-left corner of the
// rendered tree.
type box struct {
	id   string
	x, y int
	w, h int
}

func (b box) contains(x, y int) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// block is a laid-out subtree. Every line is padded to width; mid is the
// column of the card's centre, where the line from the parent attaches.
type block struct {
	lines []string
	width int
	mid   int
	boxes []box
}

// RenderTree draws the tree with each card centred above its row of
// children. The card with id cursorID is drawn with a heavy border.
func RenderTree(root render.Node, cursorID string) string {
	b := layout(root, cursorID)
	lines := make([]string, len(b.lines))
	for i, l := range b.lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

func layout(n render.Node, cursorID string) block {
	card := strings.Split(renderCard(n.Card, n.Card.ID == cursorID), "\n")
	cw := widest(card)

	if !n.HasChildren() {
		b := block{width: cw, mid: (cw - 1) / 2}
		if n.Connector {
			b.lines = append(b.lines, at(b.mid, lineStyle.Render("│"), cw))
		}
		b.boxes = []box{{id: n.Card.ID, x: 0, y: len(b.lines), w: cw, h: len(card)}}
		for _, l := range card {
			b.lines = append(b.lines, pad(l, cw))
		}
		return b
	}

	kids := make([]block, len(n.Children))
	rowWidth := 0
	for i, c := range n.Children {
		kids[i] = layout(c, cursorID)
		rowWidth += kids[i].width
	}
	rowWidth += childGap * (len(kids) - 1)

	width := max(cw, rowWidth)
	rowOff := (width - rowWidth) / 2

	offsets := make([]int, len(kids))
	centers := make([]int, len(kids))
	x := rowOff
	for i, k := range kids {
		offsets[i] = x
		centers[i] = x + k.mid
		x += k.width + childGap
	}

	cardLeft := (centers[0]+centers[len(centers)-1])/2 - (cw-1)/2
	cardLeft = min(max(cardLeft, 0), width-cw)

	b := block{width: width, mid: cardLeft + (cw-1)/2}
	if n.Connector {
		b.lines = append(b.lines, at(b.mid, lineStyle.Render("│"), width))
	}
	b.boxes = append(b.boxes, box{id: n.Card.ID, x: cardLeft, y: len(b.lines), w: cw, h: len(card)})
	for _, l := range card {
		b.lines = append(b.lines, pad(strings.Repeat(" ", cardLeft)+l, width))
	}
	if n.Stem {
		b.lines = append(b.lines, at(b.mid, lineStyle.Render("│"), width))
	}
	if n.Span {
		b.lines = append(b.lines, spanLine(centers, b.mid, width))
	}

	rowY := len(b.lines)
	height := 0
	for _, k := range kids {
		height = max(height, len(k.lines))
	}
	for r := 0; r < height; r++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", rowOff))
		for i, k := range kids {
			if r < len(k.lines) {
				sb.WriteString(k.lines[r])
			} else {
				sb.WriteString(strings.Repeat(" ", k.width))
			}
			if i < len(kids)-1 {
				sb.WriteString(strings.Repeat(" ", childGap))
			}
		}
		b.lines = append(b.lines, pad(sb.String(), width))
	}

	for i, k := range kids {
		for _, kb := range k.boxes {
			kb.x += offsets[i]
			kb.y += rowY
			b.boxes = append(b.boxes, kb)
		}
	}
	return b
}

func renderCard(c render.Card, cursor bool) string {
	lines := []string{
		cardNameStyle.Render(c.Name),
		cardRelationshipStyle.Render(c.Relationship),
	}
	if c.Years != "" {
		lines = append(lines, cardYearsStyle.Render(c.Years))
	}

	style := cardStyle
	if cursor {
		style = cardCursorStyle
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// spanLine draws the horizontal rule joining a child row, with a junction
// under the parent's stem and above each child.
func spanLine(centers []int, mid, width int) string {
	first, last := centers[0], centers[len(centers)-1]
	row := []rune(strings.Repeat(" ", width))
	for x := first; x <= last; x++ {
		row[x] = '─'
	}
	for _, c := range centers[1 : len(centers)-1] {
		row[c] = '┬'
	}
	row[first] = '┌'
	row[last] = '┐'

	switch {
	case mid == first:
		row[mid] = '├'
	case mid == last:
		row[mid] = '┤'
	case row[mid] == '┬':
		row[mid] = '┼'
	case mid > first && mid < last:
		row[mid] = '┴'
	}
	return lineStyle.Render(string(row))
}

func at(col int, s string, width int) string {
	return pad(strings.Repeat(" ", col)+s, width)
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, lipgloss.Width(l))
	}
	return w
}
