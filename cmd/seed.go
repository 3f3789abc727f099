package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/edelooff/smallville/internal/config"
	"github.com/edelooff/smallville/internal/db"
	"github.com/edelooff/smallville/internal/seeder"
)

var (
	seedBatch    int
	seedRandSeed int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Drop, recreate and populate the smallville tables",
	Long: `Drop and recreate all smallville tables, then populate them with a
randomly generated society: cities with companies, a transport network,
and a population with employment spread over home towns and commuter
destinations.

All inserts happen in a single transaction; a failed run leaves empty
tables rather than a partial dataset. Pass --rand-seed to make the
generated society reproducible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if seedBatch > 0 {
			cfg.Seed.BatchSize = seedBatch
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirm("This drops and recreates all smallville tables. Continue?") {
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

		randSeed := seedRandSeed
		if randSeed == 0 {
			randSeed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(randSeed))

		return seeder.New(conn, cfg, rng).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().IntVar(&seedBatch, "batch", 0,
		"Bulk insert threshold (default from config, 2000)")
	seedCmd.Flags().Int64Var(&seedRandSeed, "rand-seed", 0,
		"Seed for the random generator (0 uses the current time)")
}
