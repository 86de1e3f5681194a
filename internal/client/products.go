package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opsdisk/gumroad/internal/constants"
	"github.com/opsdisk/gumroad/internal/http"
	"github.com/opsdisk/gumroad/pkg/gumroad"
)

// ProductsClient implements gumroad.ProductsClient.
type ProductsClient struct {
	httpClient *http.Client
}

// NewProductsClient creates a new products client.
func NewProductsClient(httpClient *http.Client) *ProductsClient {
	return &ProductsClient{httpClient: httpClient}
}

// List implements gumroad.ProductsClient.List.
func (c *ProductsClient) List(ctx context.Context) ([]gumroad.Product, error) {
	products, _, err := c.listPage(ctx, 0)

	return products, err
}

// ListAll implements gumroad.ProductsClient.ListAll. Products usually fit in
// one response, but any next_page_url the server returns is followed.
func (c *ProductsClient) ListAll(ctx context.Context) ([]gumroad.Product, error) {
	return gumroad.FetchAllPages(ctx, c.listPage, nil)
}

// Get implements gumroad.ProductsClient.Get.
func (c *ProductsClient) Get(ctx context.Context, productID string) (*gumroad.Product, error) {
	if productID == "" {
		return nil, gumroad.ErrProductIDRequired
	}

	path := fmt.Sprintf("%s/products/%s", constants.APIBasePath, productID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting product: %w", err)
	}

	var result gumroad.ProductResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing product response: %w", err)
	}

	if !result.Success {
		return nil, &gumroad.APIError{StatusCode: resp.StatusCode, Message: result.Message}
	}

	return &result.Product, nil
}

func (c *ProductsClient) listPage(ctx context.Context, page int) ([]gumroad.Product, string, error) {
	query := gumroad.NewQueryParams().WithPage(page).ToValues()

	resp, err := c.httpClient.Get(ctx, constants.APIBasePath+"/products", query)
	if err != nil {
		return nil, "", fmt.Errorf("listing products: %w", err)
	}

	var result gumroad.ProductsResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, "", fmt.Errorf("parsing products list response: %w", err)
	}

	if !result.Success {
		return nil, "", &gumroad.APIError{StatusCode: resp.StatusCode, Message: result.Message}
	}

	return result.Products, result.NextPageURL, nil
}
