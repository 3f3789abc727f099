package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edelooff/smallville/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a smallville project in the current directory",
	Long: `Write a default smallville.config.json and a sample .env to the
current directory. Fails if a config file already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return fmt.Errorf("failed to initialize project: %w", err)
		}
		color.Green("✅ Created %s", config.ConfigFile)
		fmt.Println("Set DATABASE_URL in .env, then run: smallville seed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
