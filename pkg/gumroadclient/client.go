package gumroadclient

import (
	"strings"

	"github.com/opsdisk/gumroad/internal/client"
	"github.com/opsdisk/gumroad/pkg/gumroad"
)

// Option adjusts the Config before the client is constructed.
type Option func(*gumroad.Config)

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(config *gumroad.Config) {
		config.UserAgent = userAgent
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger gumroad.Logger) Option {
	return func(config *gumroad.Config) {
		config.Logger = logger
	}
}

// WithDebug enables request/response logging when a logger is attached.
func WithDebug(debug bool) Option {
	return func(config *gumroad.Config) {
		config.Debug = debug
	}
}

// WithCache enables read-through caching of GET responses.
func WithCache(cacheConfig *gumroad.CacheConfig) Option {
	return func(config *gumroad.Config) {
		config.Cache = cacheConfig
	}
}

// New creates a new Gumroad API client from a Config. The host is normalized
// by trimming a trailing slash and adding https when no scheme is present.
func New(config *gumroad.Config) (gumroad.Client, error) {
	if config == nil {
		return nil, gumroad.ErrConfigRequired
	}

	config.Host = normalizeHost(config.Host)

	return client.New(config)
}

// NewFromSecrets creates a client from an in-memory secrets mapping of the
// shape {"gumroad": {"host": ..., "token": ...}}.
func NewFromSecrets(secrets map[string]map[string]string, opts ...Option) (gumroad.Client, error) {
	config, err := gumroad.LoadSecrets(secrets)
	if err != nil {
		return nil, err
	}

	applyOptions(config, opts)

	return New(config)
}

// NewFromSecretsFile creates a client from a JSON secrets file on disk.
func NewFromSecretsFile(path string, opts ...Option) (gumroad.Client, error) {
	config, err := gumroad.LoadSecretsFile(path)
	if err != nil {
		return nil, err
	}

	applyOptions(config, opts)

	return New(config)
}

// NewFromEnv creates a client from GUMROAD_HOST and GUMROAD_TOKEN, loading a
// .env file first when present.
func NewFromEnv(opts ...Option) (gumroad.Client, error) {
	config, err := gumroad.LoadSecretsFromEnv()
	if err != nil {
		return nil, err
	}

	applyOptions(config, opts)

	return New(config)
}

func applyOptions(config *gumroad.Config, opts []Option) {
	for _, opt := range opts {
		opt(config)
	}
}

func normalizeHost(host string) string {
	host = strings.TrimSuffix(host, "/")

	return host
}
