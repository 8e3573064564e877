package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/workflow"
)

func statementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Record statements and schedule payments",
	}

	cmd.AddCommand(statementsAddCmd())
	cmd.AddCommand(statementsScheduleCmd())
	return cmd
}

func statementsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <card-id>",
		Short: "Record a statement for a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID(args[0])
			if err != nil {
				return err
			}

			client := newAPIClient()
			session := workflow.NewStatementSession(client, newPresenter())

			// Resolve the card so the session carries its name.
			cards, err := client.ListCards(cmd.Context())
			if err != nil {
				return err
			}
			var card *model.Card
			for i := range cards {
				if cards[i].ID == cardID {
					card = &cards[i]
					break
				}
			}
			if card == nil {
				return fmt.Errorf("card %d not found", cardID)
			}

			session.OpenFor(*card)

			input := session.Form()
			if cmd.Flags().Changed("statement-date") {
				input.StatementDate, _ = cmd.Flags().GetString("statement-date")
			}
			input.DueDate, _ = cmd.Flags().GetString("due-date")
			input.Amount, _ = cmd.Flags().GetFloat64("amount")

			if !session.Submit(cmd.Context(), input) {
				return fmt.Errorf("statement not saved")
			}
			return nil
		},
	}

	cmd.Flags().String("statement-date", "", "statement date (YYYY-MM-DD, default today)")
	cmd.Flags().String("due-date", "", "due date (YYYY-MM-DD)")
	cmd.Flags().Float64("amount", 0, "statement balance")
	_ = cmd.MarkFlagRequired("due-date")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func statementsScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <statement-id> <date>",
		Short: "Commit a payment date for a statement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			session := workflow.NewStatementSession(newAPIClient(), newPresenter())
			if !session.Schedule(cmd.Context(), id, args[1]) {
				return fmt.Errorf("payment not scheduled")
			}
			return nil
		},
	}
}
