package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opsdisk/gumroad/internal/constants"
	"github.com/opsdisk/gumroad/internal/http"
	"github.com/opsdisk/gumroad/pkg/gumroad"
)

// SalesClient implements gumroad.SalesClient.
type SalesClient struct {
	httpClient *http.Client
}

// NewSalesClient creates a new sales client.
func NewSalesClient(httpClient *http.Client) *SalesClient {
	return &SalesClient{httpClient: httpClient}
}

// List implements gumroad.SalesClient.List.
func (c *SalesClient) List(ctx context.Context, params *gumroad.QueryParams) (*gumroad.SalesPage, error) {
	query := params.ToValues()

	resp, err := c.httpClient.Get(ctx, constants.APIBasePath+"/sales", query)
	if err != nil {
		return nil, fmt.Errorf("listing sales: %w", err)
	}

	var result gumroad.SalesResponse

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing sales list response: %w", err)
	}

	if !result.Success {
		return nil, &gumroad.APIError{StatusCode: resp.StatusCode, Message: result.Message}
	}

	return &gumroad.SalesPage{
		Sales:       result.Sales,
		NextPageURL: result.NextPageURL,
	}, nil
}

// ListAll implements gumroad.SalesClient.ListAll. Pages are fetched
// sequentially until the response carries no next_page_url; items are
// concatenated in server order. A failure on any page aborts the whole call.
func (c *SalesClient) ListAll(ctx context.Context, params *gumroad.QueryParams) ([]gumroad.Sale, error) {
	fetch := func(ctx context.Context, page int) ([]gumroad.Sale, string, error) {
		pageParams := params.Clone().WithPage(page)

		salesPage, err := c.List(ctx, pageParams)
		if err != nil {
			return nil, "", err
		}

		return salesPage.Sales, salesPage.NextPageURL, nil
	}

	return gumroad.FetchAllPages(ctx, fetch, nil)
}
