package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive overview, calendar, and flow views",
		RunE:  runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	m := tui.NewModel(store.Data(), time.Now())
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
