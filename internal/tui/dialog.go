package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dukerupert/familytree/internal/dialog"
)

// renderDialog draws the detail dialog for v. Absent optional fields are
// left out.
func renderDialog(v *dialog.View) string {
	lines := []string{dialogTitleStyle.Render(v.Name)}
	lines = append(lines, dialogField("Родство", v.Relationship)...)
	if v.BirthYear != "" {
		lines = append(lines, dialogField("Год рождения", v.BirthYear)...)
	}
	if v.DeathYear != "" {
		lines = append(lines, dialogField("Год смерти", v.DeathYear)...)
	}
	if v.Children != "" {
		lines = append(lines, dialogField("Дети", v.Children)...)
	}
	lines = append(lines, buttonStyle.Render("Закрыть")+dialogLabelStyle.Render("  esc"))

	return dialogStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func dialogField(label, value string) []string {
	return []string{
		dialogLabelStyle.Render(label),
		dialogValueStyle.Width(36).Render(value),
	}
}
