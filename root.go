package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree around a
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dues-ledger",
		Short: "Membership dues ledger",
		Long: `dues-ledger tracks what each member owes and has paid.

Commands can be issued as structured actions (exec, report), as free text
(ask, when OPENAI_API_KEY is set), or over HTTP (serve). Every change is
recorded in an append-only audit log.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "Load settings from this file instead of .env")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newExecCmd(a))
	root.AddCommand(newAskCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newAuditCmd(a))
	root.AddCommand(newSeedCmd(a))
	return root
}
