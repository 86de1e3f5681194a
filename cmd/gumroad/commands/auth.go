package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/opsdisk/gumroad/internal/constants"
	"github.com/opsdisk/gumroad/pkg/gumroad"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewAuthCommand creates the auth command group.
func NewAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage credentials",
		Long:  "Store and inspect the credentials used to talk to the Gumroad API",
	}

	cmd.AddCommand(newAuthSetCommand())
	cmd.AddCommand(newAuthShowCommand())

	return cmd
}

func newAuthSetCommand() *cobra.Command {
	var (
		host  string
		token string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store credentials",
		Long:  "Write a JSON secrets file with the API host and access token. The token is prompted for when not passed as a flag.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				fmt.Print("Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return gumroad.ErrTokenRequired
			}

			path, err := secretsPath()
			if err != nil {
				return err
			}

			err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
			if err != nil {
				return fmt.Errorf("creating secrets directory: %w", err)
			}

			secrets := gumroad.Secrets{
				Gumroad: gumroad.SecretsEntry{
					Host:  host,
					Token: token,
				},
			}

			data, err := json.MarshalIndent(secrets, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding secrets: %w", err)
			}

			err = os.WriteFile(path, data, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("writing secrets file: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Credentials saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", DefaultHost, "API host to store")
	cmd.Flags().StringVar(&token, "token", "", "access token to store (prompted when omitted)")

	return cmd
}

func newAuthShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show stored credentials",
		Long:  "Show the stored API host and a masked access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := secretsPath()
			if err != nil {
				return err
			}

			config, err := gumroad.LoadSecretsFile(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Host:  %s\n", config.Host)
			fmt.Fprintf(os.Stdout, "Token: %s\n", maskToken(config.Token))

			return nil
		},
	}
}

// secretsPath resolves the secrets file location: the --secrets flag wins,
// otherwise ~/.gumroad/secrets.json.
func secretsPath() (string, error) {
	if path := viper.GetString("secrets"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".gumroad", "secrets.json"), nil
}
