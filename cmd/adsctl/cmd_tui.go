package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"campaign-manager/internal/tui"
	"campaign-manager/internal/view"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		inbox := &tui.Inbox{}
		coord := view.NewCoordinator(app.gw, app.ctrl, inbox, app.logger)
		p := tea.NewProgram(tui.New(cmd.Context(), coord, inbox), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		_, err := p.Run()
		return err
	},
}
