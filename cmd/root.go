package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "smallville",
	Short: "Create and populate a small community database",
	Long: `
Smallville creates the relational schema of a toy society (cities,
companies, people, employment and transport links) and fills it with a
randomly generated but internally consistent social graph.

The resulting database is meant for exploration: practicing joins and
aggregates against data where foreign keys actually lead somewhere.

Database support:
- PostgreSQL (default, database "smallville")
- MySQL
- SQLite (embedded)`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./smallville.config.json)")
	rootCmd.PersistentFlags().BoolP("force", "f", false, "Skip confirmations")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("smallville.config")
	}

	viper.AutomaticEnv()
	viper.ReadInConfig()
}
