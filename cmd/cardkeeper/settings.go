package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardkeeper/cardkeeper/internal/cli"
	"github.com/cardkeeper/cardkeeper/internal/workflow"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := workflow.NewSettingsSession(newAPIClient(), newPresenter())
			session.Load(cmd.Context())

			if cmd.Flags().Changed("webhook-url") {
				url, _ := cmd.Flags().GetString("webhook-url")
				if !session.Submit(cmd.Context(), url) {
					return fmt.Errorf("settings not saved")
				}
				return nil
			}

			current := session.Current()
			if current.NotificationsEnabled() {
				fmt.Println(cli.FormatInfo("Discord notifications enabled"))
				fmt.Println(cli.SubtleStyle.Render("  webhook: " + current.DiscordWebhookURL))
			} else {
				fmt.Println(cli.SubtleStyle.Render("Discord notifications disabled (no webhook URL)"))
			}
			return nil
		},
	}

	cmd.Flags().String("webhook-url", "", "Discord webhook URL (empty string disables notifications)")
	return cmd
}
