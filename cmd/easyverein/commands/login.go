package commands

import (
	"context"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
	"github.com/easyverein-community/go-easyverein/pkg/evclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var apiKey string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an easyVerein API key",
		Long:  "Verify an easyVerein API key against the API and store it in the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				apiKey = strings.TrimSpace(string(byteKey))

				fmt.Println()
			}

			if apiKey == "" {
				return easyverein.ErrAPIKeyRequired
			}

			client, err := evclient.New(&easyverein.Config{
				APIKey:     apiKey,
				BaseURL:    viper.GetString("api_url"),
				APIVersion: viper.GetString("api_version"),
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the key with a minimal request before storing it.
			ctx := context.Background()

			_, err = client.Members().List(ctx, easyverein.NewListOptions().WithLimit(1), nil)
			if err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			config := loadConfig()
			config.APIKey = apiKey

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key to store")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long:  "Clear the stored easyVerein API key from the CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""

			if err := saveConfigStruct(config); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}
