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

// NewOfferCodesCommand creates the offer-codes command group.
func NewOfferCodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offer-codes",
		Short: "Manage offer codes",
		Long:  "List, inspect, and create discount codes for a product",
	}

	cmd.AddCommand(newOfferCodesListCommand())
	cmd.AddCommand(newOfferCodesGetCommand())
	cmd.AddCommand(newOfferCodesCreateCommand())
	cmd.AddCommand(newOfferCodesGenerateCommand())

	return cmd
}

func newOfferCodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list PRODUCT_ID",
		Short: "List offer codes",
		Long:  "List all offer codes attached to a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			offerCodes, err := client.OfferCodes().List(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list offer codes: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(offerCodes)
			case OutputFormatYAML:
				return renderYAML(offerCodes)
			default:
				if len(offerCodes) == 0 {
					_, _ = os.Stdout.WriteString("No offer codes found\n")

					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Discount", "Used", "Universal")

				for _, offerCode := range offerCodes {
					_ = table.Append(offerCode.ID, offerCode.Name,
						formatDiscount(offerCode),
						strconv.Itoa(offerCode.TimesUsed),
						strconv.FormatBool(offerCode.Universal))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newOfferCodesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PRODUCT_ID OFFER_CODE_ID",
		Short: "Get offer code details",
		Long:  "Get detailed information about a specific offer code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			offerCode, err := client.OfferCodes().Get(context.Background(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get offer code: %w", err)
			}

			return outputOfferCode(offerCode)
		},
	}
}

func newOfferCodesCreateCommand() *cobra.Command {
	var (
		name             string
		amountOff        int
		offerType        string
		maxPurchaseCount int
		universal        bool
	)

	cmd := &cobra.Command{
		Use:   "create PRODUCT_ID",
		Short: "Create an offer code",
		Long:  "Create a new discount code for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &gumroad.OfferCodeCreateRequest{
				Name:      name,
				AmountOff: amountOff,
				OfferType: offerType,
				Universal: universal,
			}

			if cmd.Flags().Changed("max-purchase-count") {
				request.MaxPurchaseCount = &maxPurchaseCount
			}

			offerCode, err := client.OfferCodes().Create(context.Background(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to create offer code: %w", err)
			}

			return outputOfferCode(offerCode)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "code buyers type at checkout (required)")
	cmd.Flags().IntVar(&amountOff, "amount-off", 0, "discount amount in cents or percent (required)")
	cmd.Flags().StringVar(&offerType, "offer-type", gumroad.OfferTypeCents, "discount type (cents or percent)")
	cmd.Flags().IntVar(&maxPurchaseCount, "max-purchase-count", 0, "limit on how often the code can be used")
	cmd.Flags().BoolVar(&universal, "universal", false, "apply the code to all products")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount-off")

	return cmd
}

func newOfferCodesGenerateCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "generate PRODUCT_ID",
		Short: "Generate a random offer code name",
		Long:  "Generate a random lowercase alphanumeric code name that does not collide with the product's existing codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			name, err := client.OfferCodes().Generate(context.Background(), args[0], length)
			if err != nil {
				return fmt.Errorf("failed to generate offer code: %w", err)
			}

			fmt.Fprintln(os.Stdout, name)

			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "code length (default 32)")

	return cmd
}

func outputOfferCode(offerCode *gumroad.OfferCode) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(offerCode)
	case OutputFormatYAML:
		return renderYAML(offerCode)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")

		_ = table.Append("ID", offerCode.ID)
		_ = table.Append("Name", offerCode.Name)
		_ = table.Append("Discount", formatDiscount(*offerCode))
		_ = table.Append("Times Used", strconv.Itoa(offerCode.TimesUsed))
		_ = table.Append("Universal", strconv.FormatBool(offerCode.Universal))

		if offerCode.MaxPurchaseCount != nil {
			_ = table.Append("Max Purchases", strconv.Itoa(*offerCode.MaxPurchaseCount))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

func formatDiscount(offerCode gumroad.OfferCode) string {
	switch {
	case offerCode.PercentOff != nil:
		return fmt.Sprintf("%d%%", *offerCode.PercentOff)
	case offerCode.AmountCents != nil:
		return formatCents(*offerCode.AmountCents, "usd")
	default:
		return "N/A"
	}
}
