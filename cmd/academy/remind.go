package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"academy/internal/application/orchestrators"
)

var forceRemind bool

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Email fee reminders to every player with a negative balance",
	Long: `Send one round of payment reminders.

Without --force nothing is sent unless today is the academy's reminder day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}
		res, err := orchestrators.ExecuteSendPaymentReminders(cmd.Context(), orchestrators.SendPaymentRemindersInput{Force: forceRemind}, orchestrators.SendPaymentRemindersDeps{
			Store:       st,
			EmailSender: newEmailSender(),
			Currency:    cfg.Currency,
			Concurrency: cfg.ReminderConcurrency,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !res.Ran {
			fmt.Fprintln(out, "Not the reminder day; use --force to send anyway.")
			return nil
		}
		fmt.Fprintf(out, "Sent %d reminder(s).\n", res.Sent)
		for _, id := range res.NoAddress {
			fmt.Fprintf(out, "  no email on file: %s\n", id)
		}
		for _, f := range res.Failed {
			fmt.Fprintf(out, "  failed %s: %s\n", f.PlayerID, f.Error)
		}
		return nil
	},
}

func init() {
	remindCmd.Flags().BoolVar(&forceRemind, "force", false, "send even when today is not the reminder day")
}
