package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/opsdisk/gumroad/pkg/gumroadclient"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// DefaultHost is used when no host is configured anywhere.
	DefaultHost = "api.gumroad.com"

	// Masked replaces token values in human-readable output.
	Masked = "***"
)

// createClient builds a client from the effective configuration: an explicit
// secrets file wins, then host/token flags or config values, then the
// GUMROAD_HOST/GUMROAD_TOKEN environment.
func createClient() (gumroad.Client, error) {
	opts := clientOptions()

	if secretsPath := viper.GetString("secrets"); secretsPath != "" {
		return gumroadclient.NewFromSecretsFile(secretsPath, opts...)
	}

	host := viper.GetString("host")
	token := viper.GetString("token")

	if token != "" {
		if host == "" {
			host = DefaultHost
		}

		config := &gumroad.Config{
			Host:  host,
			Token: token,
		}

		for _, opt := range opts {
			opt(config)
		}

		return gumroadclient.New(config)
	}

	return gumroadclient.NewFromEnv(opts...)
}

func clientOptions() []gumroadclient.Option {
	var opts []gumroadclient.Option

	if viper.GetBool("verbose") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts = append(opts,
			gumroadclient.WithLogger(gumroad.NewZerologAdapter(logger)),
			gumroadclient.WithDebug(true),
		)
	}

	return opts
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// formatCents renders a cent amount like "$1.50" for USD or "150 eur" for
// anything else.
func formatCents(amount int64, currency string) string {
	if currency == "" || strings.EqualFold(currency, "usd") {
		return fmt.Sprintf("$%d.%02d", amount/100, amount%100)
	}

	return fmt.Sprintf("%d %s", amount, strings.ToLower(currency))
}

// maskToken hides all but the last four characters of a token.
func maskToken(token string) string {
	const visible = 4

	if len(token) <= visible {
		return Masked
	}

	return Masked + token[len(token)-visible:]
}
