package main

import (
	"github.com/spf13/cobra"

	"github.com/limbo/fast800/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "fast800ctl",
	Short: "Maintenance tool for the Fast800 backend",
	Long: `fast800ctl runs the operator tasks of the Fast800 backend against
the database configured in ./configs/.env (or the process environment).

SCHEMA:

  $ fast800ctl db up                        # Apply pending migrations
  $ fast800ctl db status                    # Show applied migrations

PER-USER JOBS:

  $ fast800ctl archive --user sam           # Archive yesterday's log
  $ fast800ctl summaries backfill --user sam # Turn every stored log into a summary
  $ fast800ctl migrate --user sam --user kim # Move legacy data to the current layout

Jobs for several users run concurrently, see --parallel.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		service.InitValidator()
	},
}
