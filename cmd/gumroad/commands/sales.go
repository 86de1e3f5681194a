package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewSalesCommand creates the sales command group.
func NewSalesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Manage sales",
		Long:  "List and filter Gumroad sales",
	}

	cmd.AddCommand(newSalesListCommand())

	return cmd
}

func newSalesListCommand() *cobra.Command {
	var (
		allPages  bool
		page      int
		productID string
		email     string
		after     string
		before    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales",
		Long:  "List sales for the authenticated seller, optionally filtered by product, buyer email, or date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			params := gumroad.NewQueryParams()
			if productID != "" {
				params.WithProductID(productID)
			}

			if email != "" {
				params.WithEmail(email)
			}

			if after != "" {
				params.WithAfter(after)
			}

			if before != "" {
				params.WithBefore(before)
			}

			var (
				sales       []gumroad.Sale
				nextPageURL string
			)

			if allPages {
				sales, err = client.Sales().ListAll(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list sales: %w", err)
				}
			} else {
				if page > 0 {
					params.WithPage(page)
				}

				salesPage, err := client.Sales().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list sales: %w", err)
				}

				sales = salesPage.Sales
				nextPageURL = salesPage.NextPageURL
			}

			err = outputSales(sales)
			if err != nil {
				return err
			}

			if nextPageURL != "" && viper.GetString("output") == "table" {
				_, _ = os.Stdout.WriteString("More results available; use --all or --page\n")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&page, "page", 0, "page number to fetch")
	cmd.Flags().StringVar(&productID, "product-id", "", "filter by product ID")
	cmd.Flags().StringVar(&email, "email", "", "filter by buyer email")
	cmd.Flags().StringVar(&after, "after", "", "only sales on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&before, "before", "", "only sales on or before this date (YYYY-MM-DD)")

	return cmd
}

func outputSales(sales []gumroad.Sale) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(sales)
	case OutputFormatYAML:
		return renderYAML(sales)
	default:
		if len(sales) == 0 {
			_, _ = os.Stdout.WriteString("No sales found\n")

			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("ID", "Product", "Email", "Price", "Date")

		for _, sale := range sales {
			_ = table.Append(sale.ID, sale.ProductName, sale.Email,
				formatCents(sale.Price, sale.Currency),
				sale.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}
