package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/easyverein-community/go-easyverein/internal/constants"
)

// Config represents the CLI configuration.
type Config struct {
	APIKey     string `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	APIURL     string `json:"api_url,omitempty"     yaml:"api_url,omitempty"`
	APIVersion string `json:"api_version,omitempty" yaml:"api_version,omitempty"`
	Output     string `json:"output,omitempty"      yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage easyverein CLI configuration stored in ~/.easyverein/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			display := *config
			if display.APIKey != "" {
				display.APIKey = constants.MaskedSecret
			}

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				return StandardJSONRenderer(display)
			case constants.FormatYAML:
				return StandardYAMLRenderer(display)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")
				_ = table.Append("api_key", orNotAvailable(display.APIKey))
				_ = table.Append("api_url", orNotAvailable(display.APIURL))
				_ = table.Append("api_version", orNotAvailable(display.APIVersion))
				_ = table.Append("output", orNotAvailable(display.Output))

				return table.Render()
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value and persist it to the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigKey(config, args[0], args[1]); err != nil {
				return err
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			fmt.Printf("Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if err := applyConfigKey(config, args[0], ""); err != nil {
				return err
			}

			if err := saveConfigStruct(config); err != nil {
				return err
			}

			fmt.Printf("Unset %s\n", args[0])

			return nil
		},
	}
}

func applyConfigKey(config *Config, key, value string) error {
	switch key {
	case "api_key":
		config.APIKey = value
	case "api_url":
		config.APIURL = value
	case "api_version":
		if value != "" && value != constants.DefaultAPIVersion && value != constants.APIVersionV2 {
			return fmt.Errorf("%w, got %q", constants.ErrInvalidAPIVersion, value)
		}

		config.APIVersion = value
	case "output":
		if value != "" && value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return constants.ErrInvalidOutputFormat
		}

		config.Output = value
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	return nil
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// loadConfig builds the configuration from viper, which has already
// merged the config file, environment and flags.
func loadConfig() *Config {
	return &Config{
		APIKey:     viper.GetString("api_key"),
		APIURL:     viper.GetString("api_url"),
		APIVersion: viper.GetString("api_version"),
		Output:     viper.GetString("output"),
	}
}

// saveConfigStruct writes the configuration to the active config file,
// creating ~/.easyverein/config.yml when none is in use yet.
func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".easyverein")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
