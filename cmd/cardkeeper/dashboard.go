package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cardkeeper/cardkeeper/internal/dashboard"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the at-a-glance dashboard",
		Long: `Fetch cards and statements from the server and render the upcoming
statements, action-required, and pending payments views.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	client := newAPIClient()

	cards, statements := dashboard.Load(cmd.Context(), client)
	view := dashboard.Aggregate(cards, statements, time.Now())

	newPresenter().RenderDashboard(&view)
	return nil
}
