package gumroad

import (
	"context"
	"time"
)

// Version is the library version, reported in the default User-Agent.
const Version = "0.1.0"

// ProductsClient provides access to product resources.
type ProductsClient interface {
	// List retrieves a single page of products.
	List(ctx context.Context) ([]Product, error)
	// ListAll retrieves all products, following next_page_url until exhausted.
	ListAll(ctx context.Context) ([]Product, error)
	// Get retrieves a single product by ID.
	Get(ctx context.Context, productID string) (*Product, error)
}

// SalesClient provides access to sale resources.
type SalesClient interface {
	// List retrieves one page of sales matching params.
	List(ctx context.Context, params *QueryParams) (*SalesPage, error)
	// ListAll retrieves all sales matching params, following next_page_url
	// until exhausted.
	ListAll(ctx context.Context, params *QueryParams) ([]Sale, error)
}

// OfferCodesClient provides access to offer codes scoped to a product.
type OfferCodesClient interface {
	List(ctx context.Context, productID string) ([]OfferCode, error)
	Get(ctx context.Context, productID, offerCodeID string) (*OfferCode, error)
	Create(ctx context.Context, productID string, request *OfferCodeCreateRequest) (*OfferCode, error)
	// Names returns just the names of a product's offer codes.
	Names(ctx context.Context, productID string) ([]string, error)
	// Generate creates a random offer code name of the given length that does
	// not collide with the product's existing codes. It does not create the
	// code on the server.
	Generate(ctx context.Context, productID string, length int) (string, error)
}

// Client is the full Gumroad API surface.
type Client interface {
	Products() ProductsClient
	Sales() SalesClient
	OfferCodes() OfferCodesClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a gumroad.Client.
//
// Host and Token are required and immutable after the client is constructed.
// Everything else is optional.
type Config struct {
	// Host is the API hostname (e.g. "api.gumroad.com"). A scheme may be
	// included; gumroadclient.New normalizes the value by trimming a trailing
	// slash and adding "https://" when no scheme is present.
	Host string

	// Token is the static access token sent with every request.
	Token string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each individual HTTP request. Defaults to 30s.
	// Callers wanting tighter control should use context deadlines.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of transport-level retries. The default
	// is 0: the first failure aborts and surfaces to the caller.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries when RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is set.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// Cache optionally enables read-through caching of GET responses.
	// Nil disables caching.
	Cache *CacheConfig
}
