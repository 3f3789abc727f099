package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edelooff/smallville/internal/config"
	"github.com/edelooff/smallville/internal/db"
	"github.com/edelooff/smallville/internal/schema"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all smallville tables",
	Long: `
Drop all smallville tables and their data.

⚠️  WARNING: This permanently deletes all data in the smallville tables!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("This permanently deletes all smallville data. Continue?") {
			color.Yellow("Aborted")
			return nil
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

		for _, stmt := range schema.For(conn.Provider).DropStatements() {
			if _, err := conn.DB.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
		}
		color.Green("✅ All smallville tables dropped")
		return nil
	},
}

// confirm prompts for a yes/no answer on stdin, defaulting to no.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
