package main

import (
	"database/sql"
	"fmt"

	"github.com/fatih/color"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"

	"github.com/limbo/fast800/pkg/config"
)

var migrationsDir string

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database schema",
}

var dbUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openSQL(config.New())
		if err != nil {
			return err
		}
		defer conn.Close()
		if err = goose.Up(conn, migrationsDir); err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}
		color.Green("✓ schema is up to date")
		return nil
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		conn, err := openSQL(config.New())
		if err != nil {
			return err
		}
		defer conn.Close()
		return goose.Status(conn, migrationsDir)
	},
}

func openSQL(cfg *config.Config) (*sql.DB, error) {
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, err
	}
	conn, err := sql.Open("postgres", sqlConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err = conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return conn, nil
}

func sqlConnString(cfg *config.Config) string {
	return pgConfig(cfg).ConnString() + "?sslmode=" + cfg.GetStringOr("POSTGRES_SSLMODE", "disable")
}

func init() {
	dbCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "./migrations", "directory with goose migrations")
	dbCmd.AddCommand(dbUpCmd, dbStatusCmd)
	rootCmd.AddCommand(dbCmd)
}
