package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardkeeper/cardkeeper/internal/cli"
	"github.com/cardkeeper/cardkeeper/internal/notify"
)

func remindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remind",
		Short: "Send due statement and payment reminders to Discord",
		Long: `Scan all statements and post reminders to the configured Discord
webhook: one when a statement is first recorded, and one when a pending
statement reaches its recommended payment date. Each reminder is sent
at most once. Run this from cron or a timer.`,
		RunE: runRemind,
	}
}

func runRemind(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	settingsStore, err := initSettings()
	if err != nil {
		return err
	}
	current, err := settingsStore.Load()
	if err != nil {
		return err
	}

	sender := notify.NewDiscord(current.DiscordWebhookURL)
	result, err := notify.RunReminders(ctx, store, sender, time.Now())
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Sent %d statement and %d payment reminders",
		result.StatementReminders, result.PaymentReminders)))
	return nil
}
