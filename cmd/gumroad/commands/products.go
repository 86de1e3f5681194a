package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewProductsCommand creates the products command group.
func NewProductsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage products",
		Long:  "List and inspect Gumroad products",
	}

	cmd.AddCommand(newProductsListCommand())
	cmd.AddCommand(newProductsGetCommand())

	return cmd
}

func newProductsListCommand() *cobra.Command {
	var allPages bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Long:  "List products for the authenticated seller",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var products []gumroad.Product
			if allPages {
				products, err = client.Products().ListAll(ctx)
			} else {
				products, err = client.Products().List(ctx)
			}

			if err != nil {
				return fmt.Errorf("failed to list products: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(products)
			case OutputFormatYAML:
				return renderYAML(products)
			default:
				if len(products) == 0 {
					_, _ = os.Stdout.WriteString("No products found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Price", "Published", "Sales")

				for _, product := range products {
					published := "no"
					if product.Published {
						published = "yes"
					}

					_ = table.Append(product.ID, product.Name,
						formatCents(product.Price, product.Currency),
						published, strconv.FormatInt(product.SalesCount, 10))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")

	return cmd
}

func newProductsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID",
		Short: "Get product details",
		Long:  "Get detailed information about a specific product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			product, err := client.Products().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get product: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(product)
			case OutputFormatYAML:
				return renderYAML(product)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", product.ID)
				_ = table.Append("Name", product.Name)
				_ = table.Append("Price", formatCents(product.Price, product.Currency))
				_ = table.Append("Published", strconv.FormatBool(product.Published))
				_ = table.Append("Sales", strconv.FormatInt(product.SalesCount, 10))
				_ = table.Append("Revenue", formatCents(product.SalesUSDCents, "usd"))

				if product.ShortURL != "" {
					_ = table.Append("URL", product.ShortURL)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
