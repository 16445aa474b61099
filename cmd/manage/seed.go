package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var seedSkipMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the bundled jobs and learning resources",
	Long:  "Upserts the bundled job and learning resource catalogue and invalidates the cached catalogue views. Migrations run first unless --skip-migrate is set.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedSkipMigrate, "skip-migrate", false, "do not apply pending migrations before seeding")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	c, err := openContainer()
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if !seedSkipMigrate {
		if _, err := c.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	if err := c.Seed(ctx); err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "catalogue seeded")
	return nil
}
