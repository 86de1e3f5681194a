package gumroad

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Secrets is the on-disk credential structure:
//
//	{"gumroad": {"host": "api.gumroad.com", "token": "..."}}
type Secrets struct {
	Gumroad SecretsEntry `json:"gumroad" yaml:"gumroad"`
}

// SecretsEntry holds the host and token for one account.
type SecretsEntry struct {
	Host  string `json:"host"  yaml:"host"`
	Token string `json:"token" yaml:"token"`
}

// Environment variable names read by LoadSecretsFromEnv.
const (
	EnvHost  = "GUMROAD_HOST"
	EnvToken = "GUMROAD_TOKEN"
)

// LoadSecrets builds a Config from an in-memory secrets mapping of the shape
// {"gumroad": {"host": ..., "token": ...}}.
func LoadSecrets(secrets map[string]map[string]string) (*Config, error) {
	if len(secrets) == 0 {
		return nil, ErrSecretsRequired
	}

	entry := secrets["gumroad"]

	return configFromEntry(SecretsEntry{
		Host:  entry["host"],
		Token: entry["token"],
	})
}

// LoadSecretsFile builds a Config from a JSON secrets file on disk.
func LoadSecretsFile(path string) (*Config, error) {
	if path == "" {
		return nil, ErrSecretsRequired
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("reading secrets file %s: %w", path, err)
	}

	var secrets Secrets

	err = json.Unmarshal(data, &secrets)
	if err != nil {
		return nil, fmt.Errorf("parsing secrets file %s: %w", path, err)
	}

	return configFromEntry(secrets.Gumroad)
}

// LoadSecretsFromEnv builds a Config from GUMROAD_HOST and GUMROAD_TOKEN.
// A .env file in the working directory is loaded first when present; real
// environment variables take precedence over .env values.
func LoadSecretsFromEnv() (*Config, error) {
	// godotenv never overwrites variables that are already set.
	_ = godotenv.Load()

	return configFromEntry(SecretsEntry{
		Host:  os.Getenv(EnvHost),
		Token: os.Getenv(EnvToken),
	})
}

func configFromEntry(entry SecretsEntry) (*Config, error) {
	if entry.Host == "" {
		return nil, ErrHostRequired
	}

	if entry.Token == "" {
		return nil, ErrTokenRequired
	}

	return &Config{
		Host:  entry.Host,
		Token: entry.Token,
	}, nil
}
