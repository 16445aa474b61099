// Command manage runs maintenance tasks against the career-match database.
package main

import (
	"context"
	"fmt"
	"os"

	"career-match/internal/app"
	"career-match/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "manage",
	Short:         "career-match maintenance commands",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openContainer() (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c, err := app.NewContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to init container: %w", err)
	}
	return c, nil
}
