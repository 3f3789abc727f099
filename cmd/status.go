package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edelooff/smallville/internal/config"
	"github.com/edelooff/smallville/internal/db"
	"github.com/edelooff/smallville/internal/schema"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts for all smallville tables",
	Long: `Show the current row count of every smallville table, giving a
quick impression of the size of the seeded dataset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		dbURL, err := cfg.DatabaseURL()
		if err != nil {
			return err
		}

		ctx := context.Background()
		conn, err := db.Open(ctx, cfg.Database.Provider, dbURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()

		var total int
		for _, table := range schema.Tables {
			count, err := conn.Count(ctx, table)
			if err != nil {
				color.Yellow("  %-16s (missing)", table)
				continue
			}
			fmt.Printf("  %-16s %8d rows\n", table, count)
			total += count
		}
		color.Green("  %-16s %8d rows", "total", total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
