package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/blogem/dues-ledger/models"
)

// reportActions are the read-only actions accepted by the report command
var reportActions = []models.Action{
	models.ActionCheckPaid,
	models.ActionCheckIfPaid,
	models.ActionGetPaymentAmount,
	models.ActionCountFullyPaid,
	models.ActionCurrentDuesAmount,
	models.ActionCountWithEmail,
	models.ActionListUnpaid,
	models.ActionListWithBalances,
	models.ActionGetTotalCollected,
	models.ActionGetTotalOutstanding,
	models.ActionGetTotalExpected,
}

func newExecCmd(a *app) *cobra.Command {
	var command models.Command
	var action, amount, value string

	cmd := &cobra.Command{
		Use:   "exec",
		Short: "Execute one structured ledger command",
		Example: `  dues-ledger exec --action add_payment --name Chris --amount 20
  dues-ledger exec --action set_field --name Chris --field email --value chris@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			command.Action = models.Action(action)
			command.Amount = models.LooseStr(amount)
			command.Value = models.LooseStr(value)

			reply := a.services.Commands.Execute(a.cliContext(cmd), command)
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}

	cmd.Flags().StringVar(&action, "action", "", "Action to perform (required)")
	cmd.Flags().StringVar(&command.Name, "name", "", "Member name query")
	cmd.Flags().StringVar(&amount, "amount", "", "Payment amount")
	cmd.Flags().StringVar(&command.Field, "field", "", "Field label for lookup and set_field")
	cmd.Flags().StringVar(&value, "value", "", "New value for set_field")
	cmd.MarkFlagRequired("action")
	return cmd
}

func newAskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a free-text question or give a free-text command",
		Example: `  dues-ledger ask "who still owes money?"
  dues-ledger ask Chris paid 20 dollars`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := a.services.Commands.Ask(a.cliContext(cmd), strings.Join(args, " "))
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}

func newReportCmd(a *app) *cobra.Command {
	valid := make([]string, 0, len(reportActions))
	for _, action := range reportActions {
		valid = append(valid, string(action))
	}

	return &cobra.Command{
		Use:       "report <action> [name]",
		Short:     "Run a read-only report",
		Long:      "Run a read-only report. Actions: " + strings.Join(valid, ", "),
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := models.Action(args[0])
			if !isReportAction(action) {
				return fmt.Errorf("%q is not a report action", args[0])
			}

			command := models.Command{Action: action}
			if len(args) == 2 {
				command.Name = args[1]
			}

			reply := a.services.Commands.Execute(a.cliContext(cmd), command)
			fmt.Fprintln(cmd.OutOrStdout(), reply)
			return nil
		},
	}
}

func isReportAction(action models.Action) bool {
	for _, candidate := range reportActions {
		if candidate == action {
			return true
		}
	}
	return false
}

func newAuditCmd(a *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show the most recent audit log entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := a.services.Audit.GetRecentEntries(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No changes recorded yet.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TIME\tACTION\tTARGET\tDETAILS\tACTOR")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					models.FormatDateTime(e.Timestamp.Local()), e.Action, e.Target, e.Details, e.Actor)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Number of entries to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load a roster into an empty ledger",
		Long: `Load a roster into an empty ledger. The file lists the header columns
and one row of cell values per member:

  columns: [First Name, Last Name, Email, Dues Owed, Dues Payed]
  rows:
    - [Chris, Lee, chris@example.com, "100", "40"]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}

			var seed models.RosterSeed
			if err := yaml.Unmarshal(raw, &seed); err != nil {
				return fmt.Errorf("failed to parse seed file: %w", err)
			}

			n, err := a.services.Roster.Seed(cmd.Context(), &seed)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d members into %q.\n", n, a.cfg.RosterSheet)
			return nil
		},
	}
}
