package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/easyverein-community/go-easyverein/internal/constants"
	"github.com/easyverein-community/go-easyverein/pkg/easyverein"
	"github.com/easyverein-community/go-easyverein/pkg/evclient"
)

// CreateClient builds an API client from the resolved CLI configuration.
func CreateClient() (easyverein.Client, error) {
	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &easyverein.Config{
		APIKey:     apiKey,
		BaseURL:    viper.GetString("api_url"),
		APIVersion: viper.GetString("api_version"),
		RetryMax:   constants.DefaultRetryMax,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = stderrLogger{}
	}

	client, err := evclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// stderrLogger writes structured log lines to stderr for --verbose runs.
type stderrLogger struct{}

func (stderrLogger) Debug(msg string, fields map[string]interface{}) { logLine("DEBUG", msg, fields) }
func (stderrLogger) Info(msg string, fields map[string]interface{})  { logLine("INFO", msg, fields) }
func (stderrLogger) Warn(msg string, fields map[string]interface{})  { logLine("WARN", msg, fields) }
func (stderrLogger) Error(msg string, fields map[string]interface{}) { logLine("ERROR", msg, fields) }

func logLine(level, msg string, fields map[string]interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

// ParseRecordID converts a positional argument into a record id.
func ParseRecordID(arg string) (int64, error) {
	if arg == "" {
		return 0, constants.ErrIDRequired
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(2)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// Cell formatting helpers for table output. Most record fields are
// pointers, so every helper tolerates nil.

func displayString(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return truncate(*value)
}

func displayBool(value *bool) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatBool(*value)
}

func displayFloat(value *float64) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.FormatFloat(*value, 'f', 2, 64)
}

func displayDate(value *easyverein.Date) string {
	if value == nil {
		return constants.NotAvailable
	}

	return value.String()
}

func displayRef(value *easyverein.Ref) string {
	if value == nil {
		return constants.NotAvailable
	}

	if value.IsURL() {
		return truncate(value.URL)
	}

	return strconv.FormatInt(value.ID, 10)
}

func truncate(value string) string {
	if len(value) <= constants.StringTruncationLength {
		return value
	}

	return value[:constants.StringTruncationLength-3] + "..."
}
