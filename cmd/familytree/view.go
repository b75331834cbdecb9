package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dukerupert/familytree/internal/family"
	"github.com/dukerupert/familytree/internal/logging"
	"github.com/dukerupert/familytree/internal/render"
	"github.com/dukerupert/familytree/internal/tui"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the family tree in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		// The alternate screen owns the terminal; keep log output off it.
		logging.Setup(io.Discard, "error", "text")

		m := tui.NewModel(family.Default(), family.Title, family.Subtitle)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("viewer: %w", err)
		}
		return nil
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the family tree to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		tree := family.Default()
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTree(render.Build(tree.Root(), 0), ""))
		return err
	},
}
