// Package client implements the gumroad.Client interface.
package client

import (
	"fmt"
	"strings"

	"github.com/opsdisk/gumroad/internal/http"
	"github.com/opsdisk/gumroad/pkg/gumroad"
)

// Client implements the gumroad.Client interface.
type Client struct {
	httpClient *http.Client
	config     *gumroad.Config

	products   gumroad.ProductsClient
	sales      gumroad.SalesClient
	offerCodes gumroad.OfferCodesClient
}

// New creates a new Gumroad API client from a validated Config.
func New(config *gumroad.Config) (*Client, error) {
	if config == nil {
		return nil, gumroad.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, gumroad.ErrHostRequired
	}

	if config.Token == "" {
		return nil, gumroad.ErrTokenRequired
	}

	httpOpts, err := buildHTTPOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL(config.Host), config.Token, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		config:     config,
	}

	client.products = NewProductsClient(httpClient)
	client.sales = NewSalesClient(httpClient)
	client.offerCodes = NewOfferCodesClient(httpClient)

	return client, nil
}

// Products implements gumroad.Client.Products.
func (c *Client) Products() gumroad.ProductsClient {
	return c.products
}

// Sales implements gumroad.Client.Sales.
func (c *Client) Sales() gumroad.SalesClient {
	return c.sales
}

// OfferCodes implements gumroad.Client.OfferCodes.
func (c *Client) OfferCodes() gumroad.OfferCodesClient {
	return c.offerCodes
}

// buildHTTPOptions translates a Config into transport options.
func buildHTTPOptions(config *gumroad.Config) ([]http.Option, error) {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Cache != nil {
		cache, err := gumroad.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building cache: %w", err)
		}

		opts = append(opts, http.WithCache(cache, config.Cache.EntryTTL()))
	}

	return opts, nil
}

// baseURL builds the request base URL from the configured host. Hosts without
// a scheme get https; an explicit scheme (httptest servers) is kept as-is.
func baseURL(host string) string {
	if strings.Contains(host, "://") {
		return strings.TrimSuffix(host, "/")
	}

	return "https://" + strings.TrimSuffix(host, "/")
}
