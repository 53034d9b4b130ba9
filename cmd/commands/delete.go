package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitrin/vitrin-cli/internal/cli"
	"github.com/vitrin/vitrin-cli/pkg/store"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <products|categories> <id>",
		Short: "Delete a product or category",
		Long: `Delete a record by id. Prompts for confirmation unless --force is set.

Deleting a category that products still reference fails; reassign or
delete those products first.

Examples:
  # Delete a product
  vitrin delete products 4f1c...

  # Delete a category without the prompt
  vitrin delete categories 9a2b... --force`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"products", "categories"},
		RunE: func(cmd *cobra.Command, args []string) error {
			table, id := args[0], args[1]
			if table != "products" && table != "categories" {
				return fmt.Errorf("unknown table %q: expected products or categories", table)
			}

			ok, err := cli.Confirm(fmt.Sprintf("Delete %s record %s?", table, id), false)
			if err != nil {
				return err
			}
			if !ok {
				cli.PrintInfo("Aborted")
				return nil
			}

			cmdCtx := cli.NewCommandContext()
			defer cmdCtx.Close()

			s, err := cmdCtx.Store()
			if err != nil {
				return err
			}

			if table == "products" {
				err = s.DeleteProduct(context.Background(), id)
			} else {
				err = s.DeleteCategory(context.Background(), id)
			}
			if store.IsForeignKeyViolation(err) {
				return fmt.Errorf("cannot delete %s record %s because other records still reference it", table, id)
			}
			if err != nil {
				return err
			}

			cli.PrintSuccess("Deleted %s record %s", table, id)
			return nil
		},
	}
	return cmd
}
