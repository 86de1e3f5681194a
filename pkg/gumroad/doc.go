// Package gumroad provides types, interfaces, and helpers for working with
// the Gumroad V2 API.
//
// # Overview
//
// The gumroad package defines the domain types (Product, Sale, OfferCode) and
// the interfaces for resource-oriented clients (ProductsClient, SalesClient,
// OfferCodesClient). A concrete implementation of these clients is provided by
// the gumroadclient package, which wires configuration, transport, and
// credential loading. Most consumers should import gumroadclient to construct
// a client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/opsdisk/gumroad/pkg/gumroadclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := gumroadclient.NewFromSecretsFile("/home/user/gumroad_secrets.json")
//	  if err != nil { log.Fatal(err) }
//
//	  // Retrieve every sale, following next_page_url until exhausted
//	  sales, err := cli.Sales().ListAll(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = sales
//	}
//
// # Credentials
//
// Credentials are a host plus a static access token. They can come from an
// in-memory mapping, a JSON secrets file of the shape
// {"gumroad": {"host": "...", "token": "..."}}, or the process environment
// (GUMROAD_HOST / GUMROAD_TOKEN, optionally via a .env file). See LoadSecrets,
// LoadSecretsFile, and LoadSecretsFromEnv.
//
// # Pagination
//
// List endpoints that span multiple pages advertise a next_page_url field.
// The package provides generic helpers for iterating or collecting paginated
// results:
//
//	it := gumroad.NewPageIterator(ctx, fetch)
//	for it.HasNext() {
//	  sale, err := it.Next()
//	  if err != nil { break }
//	  _ = sale
//	}
//
// or fetch all pages at once with FetchAllPages. Pages are requested
// sequentially and items are returned in server order.
//
// # Errors
//
// Configuration problems surface as sentinel errors (ErrSecretsRequired,
// ErrHostRequired, ErrTokenRequired). API failures surface as *APIError
// carrying the HTTP status and the API's message field. Helpers such as
// IsNotFound and IsUnauthorized make it easy to branch on common cases.
// Errors propagate immediately; no retry or partial-result salvage is
// attempted.
package gumroad
