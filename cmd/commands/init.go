package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitrin/vitrin-cli/internal/cli"
	"github.com/vitrin/vitrin-cli/pkg/files"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

var initSeed bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new store",
		Long: `Creates the .vitrin folder structure in the current directory, along
with the SQLite database, settings file and signing secret.

Examples:
  # Initialize an empty store
  vitrin init

  # Initialize with demo categories and products
  vitrin init --seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine current directory: %w", err)
			}
			cli.PrintInfo("Initializing store in %s...", cwd)

			if err := files.InitProjectStructure(); err != nil {
				return fmt.Errorf("failed to initialize store structure: %w", err)
			}

			s, err := store.OpenSQLite(files.DatabasePath())
			if err != nil {
				return fmt.Errorf("failed to create database: %w", err)
			}
			defer s.Close()

			if initSeed {
				if err := store.Seed(context.Background(), s); err != nil {
					return fmt.Errorf("failed to seed demo data: %w", err)
				}
				cli.PrintSuccess("Seeded demo categories and products")
			}

			cli.PrintSuccess("Created %s folder structure", files.VitrinDir)
			cli.PrintInfo("Run 'vitrin' to browse the store, or 'vitrin admin' for the back office.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&initSeed, "seed", false, "create demo categories and products")
	return cmd
}
