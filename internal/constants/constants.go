package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for secrets and configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits. Retries are off unless a caller opts in.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// API surface.
const (
	// APIBasePath is the versioned path prefix for all endpoints.
	APIBasePath = "/v2"
)

// Offer code generation.
const (
	// DefaultOfferCodeLength is the length of generated offer code names.
	DefaultOfferCodeLength = 32

	// OfferCodeCharset are the characters used for generated offer codes.
	OfferCodeCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
)
