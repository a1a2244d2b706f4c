package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	userNames []string
	parallel  int
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Archive yesterday's daily log into a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd.Context(), cmd.OutOrStdout(), userNames, parallel, func(e *jobEnv) userJob {
			return func(ctx context.Context, uid uuid.UUID) (string, error) {
				res, err := e.archive.ArchiveYesterdaysLog(ctx, uid)
				return string(res), err
			}
		})
	},
}

var summariesCmd = &cobra.Command{
	Use:   "summaries",
	Short: "Daily summary maintenance",
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Create summaries for every stored daily log",
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd.Context(), cmd.OutOrStdout(), userNames, parallel, func(e *jobEnv) userJob {
			return func(ctx context.Context, uid uuid.UUID) (string, error) {
				res, err := e.archive.MigrateAllLogsToSummaries(ctx, uid)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("migrated %d, skipped %d, failed %d", res.Migrated, res.Skipped, len(res.Errors)), nil
			}
		})
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Move inline images, old logs and legacy plans to the current layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd.Context(), cmd.OutOrStdout(), userNames, parallel, func(e *jobEnv) userJob {
			return func(ctx context.Context, uid uuid.UUID) (string, error) {
				rep, err := e.migration.RunAll(ctx, uid)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("images %d, logs %d, plans %d, legacy removed %t",
					rep.Images.Migrated, rep.Logs.Migrated, rep.Plans.Migrated, rep.LegacyRemoved), nil
			}
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{archiveCmd, backfillCmd, migrateCmd} {
		c.Flags().StringSliceVarP(&userNames, "user", "u", nil, "user name, repeatable")
		c.Flags().IntVar(&parallel, "parallel", 4, "users processed at once")
	}
	summariesCmd.AddCommand(backfillCmd)
	rootCmd.AddCommand(archiveCmd, summariesCmd, migrateCmd)
}
