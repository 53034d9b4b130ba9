package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/vitrin/vitrin-cli/internal/cli"
	"github.com/vitrin/vitrin-cli/pkg/models"
)

// ProductListResult is the structured output of the products command.
type ProductListResult struct {
	Items []models.Product `json:"items" yaml:"items"`
	Count int              `json:"count" yaml:"count"`
}

// CategoryListResult is the structured output of the categories command.
type CategoryListResult struct {
	Items []models.Category `json:"items" yaml:"items"`
	Count int               `json:"count" yaml:"count"`
}

// NewProductsCommand creates the products command
func NewProductsCommand() *cobra.Command {
	var output string
	var newest bool

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List products",
		Long: `List the store's products.

Examples:
  # List products alphabetically
  vitrin products

  # List newest first, as JSON
  vitrin products --newest -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			defer ctx.Close()

			s, err := ctx.Store()
			if err != nil {
				return err
			}

			var products []models.Product
			if newest {
				products, err = s.ProductsByNewest(context.Background())
			} else {
				products, err = s.Products(context.Background())
			}
			if err != nil {
				return err
			}

			if cli.OutputFormat(output) == cli.FormatText {
				cli.WriteProductsTable(os.Stdout, products)
				return nil
			}
			return cli.OutputResults(os.Stdout, output, ProductListResult{
				Items: products,
				Count: len(products),
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	cmd.Flags().BoolVar(&newest, "newest", false, "order by creation time, newest first")
	return cmd
}

// NewCategoriesCommand creates the categories command
func NewCategoriesCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			defer ctx.Close()

			s, err := ctx.Store()
			if err != nil {
				return err
			}

			categories, err := s.Categories(context.Background())
			if err != nil {
				return err
			}

			if cli.OutputFormat(output) == cli.FormatText {
				cli.WriteCategoriesTable(os.Stdout, categories)
				return nil
			}
			return cli.OutputResults(os.Stdout, output, CategoryListResult{
				Items: categories,
				Count: len(categories),
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	return cmd
}
