package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cardkeeper/cardkeeper/internal/cli"
	"github.com/cardkeeper/cardkeeper/internal/dateutil"
	"github.com/cardkeeper/cardkeeper/internal/model"
	"github.com/cardkeeper/cardkeeper/internal/workflow"
)

func cardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Manage credit cards",
	}

	cmd.AddCommand(cardsListCmd())
	cmd.AddCommand(cardsAddCmd())
	cmd.AddCommand(cardsEditCmd())
	cmd.AddCommand(cardsDeleteCmd())
	return cmd
}

func cardsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := newAPIClient().ListCards(cmd.Context())
			if err != nil {
				return err
			}

			if len(cards) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No cards on file"))
				return nil
			}

			fmt.Println(cli.TableHeaderStyle.Render("ID  Name                      Card         Statement day  Limit"))
			for _, card := range cards {
				fmt.Printf("%-3d %-25s %-12s %-14s %s\n",
					card.ID,
					card.Name,
					dateutil.FormatLastFour(card.LastFour),
					dateutil.FormatOrdinal(card.StatementDay),
					dateutil.FormatCurrency(card.CreditLimit))
			}
			return nil
		},
	}
}

// cardInputFlags registers the shared add/edit form flags.
func cardInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "card display name")
	cmd.Flags().String("last-four", "", "last four digits of the card number")
	cmd.Flags().String("statement-date", "", "last statement date (YYYY-MM-DD)")
	cmd.Flags().String("due-date", "", "last due date (YYYY-MM-DD)")
	cmd.Flags().Float64("credit-limit", 0, "credit limit (0 for none)")
}

func cardInputFromFlags(cmd *cobra.Command, base model.CardInput) model.CardInput {
	input := base
	if cmd.Flags().Changed("name") {
		input.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("last-four") {
		input.LastFour, _ = cmd.Flags().GetString("last-four")
	}
	if cmd.Flags().Changed("statement-date") {
		input.StatementDate, _ = cmd.Flags().GetString("statement-date")
	}
	if cmd.Flags().Changed("due-date") {
		input.DueDate, _ = cmd.Flags().GetString("due-date")
	}
	if cmd.Flags().Changed("credit-limit") {
		input.CreditLimit, _ = cmd.Flags().GetFloat64("credit-limit")
	}
	return input
}

func cardsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new card",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := workflow.NewCardSession(newAPIClient(), newPresenter())
			session.OpenAdd()

			input := cardInputFromFlags(cmd, session.Form())
			if !session.Submit(cmd.Context(), input) {
				return fmt.Errorf("card not saved")
			}
			return nil
		},
	}
	cardInputFlags(cmd)
	return cmd
}

func cardsEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			session := workflow.NewCardSession(newAPIClient(), newPresenter())
			session.Refresh(cmd.Context())
			if err := session.OpenEdit(id); err != nil {
				return err
			}

			input := cardInputFromFlags(cmd, session.Form())
			if !session.Submit(cmd.Context(), input) {
				return fmt.Errorf("card not saved")
			}
			return nil
		},
	}
	cardInputFlags(cmd)
	return cmd
}

func cardsDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a card and its statements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			force, _ := cmd.Flags().GetBool("force")

			session := workflow.NewCardSession(newAPIClient(), newPresenter())
			session.Refresh(cmd.Context())

			confirmation, err := session.OpenDeleteConfirm(id)
			if err != nil {
				return err
			}

			if !force {
				question := fmt.Sprintf("Delete %s (%s) and its %d statement(s)?",
					confirmation.CardName,
					dateutil.FormatLastFour(confirmation.LastFour),
					confirmation.StatementCount)
				if !cli.Confirm(os.Stdin, os.Stdout, question) {
					session.CancelDelete()
					fmt.Println(cli.FormatInfo("Delete cancelled"))
					return nil
				}
			}

			if !session.ConfirmDelete(cmd.Context()) {
				return fmt.Errorf("card not deleted")
			}
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "skip the confirmation prompt")
	return cmd
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}
