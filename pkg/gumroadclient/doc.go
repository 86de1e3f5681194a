// Package gumroadclient provides the main entry point for creating Gumroad
// API clients.
//
// Clients can be constructed from an explicit Config, an in-memory secrets
// mapping, a JSON secrets file, or the process environment:
//
//	cli, err := gumroadclient.NewFromSecretsFile("/home/user/gumroad_secrets.json")
//	if err != nil { ... }
//	products, err := cli.Products().ListAll(ctx)
//
// The returned client is read-only after construction and safe for concurrent
// use.
package gumroadclient
