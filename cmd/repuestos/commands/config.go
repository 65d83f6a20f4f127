package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/internal/logging"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/fivetwenty-io/repuestos/pkg/repuestosclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Configuration keys, shared by viper, the config file and REPUESTOS_* variables.
const (
	keyAPI               = "api"
	keyOutput            = "output"
	keyVerbose           = "verbose"
	keyRetryMax          = "retry_max"
	keyNATSURL           = "nats_url"
	keyNATSSubjectPrefix = "nats_subject_prefix"
)

// Config represents the persisted CLI configuration.
type Config struct {
	API               string `json:"api,omitempty"                 yaml:"api,omitempty"`
	Output            string `json:"output,omitempty"              yaml:"output,omitempty"`
	Verbose           bool   `json:"verbose,omitempty"             yaml:"verbose,omitempty"`
	RetryMax          int    `json:"retry_max,omitempty"           yaml:"retry_max,omitempty"`
	NATSURL           string `json:"nats_url,omitempty"            yaml:"nats_url,omitempty"`
	NATSSubjectPrefix string `json:"nats_subject_prefix,omitempty" yaml:"nats_subject_prefix,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the CLI configuration file",
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
		Long:  "Display the effective configuration, combining flags, environment and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := effectiveConfig()
			out := cmd.OutOrStdout()

			switch format := viper.GetString(keyOutput); format {
			case constants.FormatJSON, constants.FormatYAML:
				return encode(out, format, config)
			default:
				return displayConfigTable(out, config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value in the config file. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = writeConfigFile(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s to %s\n", args[0], args[1])

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
			path, err := configFilePath()
			if err != nil {
				return err
			}

			config, err := readConfigFile(path)
			if err != nil {
				return err
			}

			err = unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = writeConfigFile(path, config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func configKeys() []string {
	return []string{keyAPI, keyOutput, keyVerbose, keyRetryMax, keyNATSURL, keyNATSSubjectPrefix}
}

func effectiveConfig() *Config {
	return &Config{
		API:               viper.GetString(keyAPI),
		Output:            viper.GetString(keyOutput),
		Verbose:           viper.GetBool(keyVerbose),
		RetryMax:          viper.GetInt(keyRetryMax),
		NATSURL:           viper.GetString(keyNATSURL),
		NATSSubjectPrefix: viper.GetString(keyNATSSubjectPrefix),
	}
}

func displayConfigTable(out io.Writer, config *Config) error {
	table := tablewriter.NewWriter(out)
	table.Header("Key", "Value")

	_ = table.Append(keyAPI, orNone(config.API))
	_ = table.Append(keyOutput, orNone(config.Output))
	_ = table.Append(keyVerbose, strconv.FormatBool(config.Verbose))
	_ = table.Append(keyRetryMax, strconv.Itoa(config.RetryMax))
	_ = table.Append(keyNATSURL, orNone(config.NATSURL))
	_ = table.Append(keyNATSSubjectPrefix, orNone(config.NATSSubjectPrefix))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyAPI:
		config.API = repuestosclient.NormalizeEndpoint(value)
	case keyOutput:
		format, err := parseFormat(value)
		if err != nil {
			return err
		}

		config.Output = format
	case keyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}

		config.Verbose = verbose
	case keyRetryMax:
		retryMax, err := strconv.Atoi(value)
		if err != nil || retryMax < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", constants.ErrInvalidValue, key)
		}

		config.RetryMax = retryMax
	case keyNATSURL:
		config.NATSURL = value
	case keyNATSSubjectPrefix:
		config.NATSSubjectPrefix = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case keyAPI:
		config.API = ""
	case keyOutput:
		config.Output = ""
	case keyVerbose:
		config.Verbose = false
	case keyRetryMax:
		config.RetryMax = 0
	case keyNATSURL:
		config.NATSURL = ""
	case keyNATSSubjectPrefix:
		config.NATSSubjectPrefix = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func configFilePath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName+"."+constants.ConfigFileType), nil
}

func readConfigFile(path string) (*Config, error) {
	config := &Config{}

	// path is the --config flag or a fixed location under the home directory.
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func writeConfigFile(path string, config *Config) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// newLogger builds the zap logger for this invocation.
func newLogger() (*zap.Logger, error) {
	return logging.New(viper.GetBool(keyVerbose))
}

// newClient creates an API client from the effective configuration.
func newClient(logger *zap.Logger) (repuestos.Client, error) {
	endpoint := viper.GetString(keyAPI)
	if strings.TrimSpace(endpoint) == "" {
		return nil, constants.ErrNoAPIConfigured
	}

	verbose := viper.GetBool(keyVerbose)
	adapter := logging.NewZapLogger(logger)

	chain := repuestos.NewInterceptorChain().
		AddRequestInterceptor(repuestos.RequestIDInterceptor())

	if verbose {
		metrics := repuestos.NewMetricsCollector()
		metrics.SetOnChange(func(endpoint string, m repuestos.Metrics) {
			adapter.Debug("endpoint metrics", map[string]interface{}{
				"endpoint": endpoint,
				"requests": m.TotalRequests,
				"failures": m.TotalErrors,
				"latency":  m.AverageLatency.String(),
			})
		})

		chain.AddRequestInterceptor(repuestos.LoggingInterceptor(adapter)).
			AddRequestInterceptor(repuestos.MetricsRequestInterceptor(metrics)).
			AddResponseInterceptor(repuestos.LoggingResponseInterceptor(adapter)).
			AddResponseInterceptor(repuestos.MetricsResponseInterceptor(metrics))
	}

	config := &repuestos.Config{
		APIEndpoint:  endpoint,
		HTTPTimeout:  constants.DefaultHTTPTimeout,
		RetryMax:     viper.GetInt(keyRetryMax),
		RetryWaitMin: constants.DefaultRetryWaitMin,
		RetryWaitMax: constants.DefaultRetryWaitMax,
		Debug:        verbose,
		Logger:       adapter,
		UserAgent:    constants.DefaultUserAgent,
		Interceptors: chain,
	}

	client, err := repuestosclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// newNotifier publishes change events to NATS when nats_url is set.
func newNotifier() (repuestos.Notifier, error) {
	url := viper.GetString(keyNATSURL)
	if url == "" {
		return repuestos.NewNoOpNotifier(), nil
	}

	notifier, err := repuestos.NewNotifierFromConfig(&repuestos.NotifierConfig{
		Type: repuestos.NotifierTypeNATS,
		NATS: &repuestos.NATSConfig{
			URL:           url,
			SubjectPrefix: viper.GetString(keyNATSSubjectPrefix),
			Name:          "repuestos-cli",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return notifier, nil
}

func orNone(value string) string {
	if value == "" {
		return constants.None
	}

	return value
}

func encode(out io.Writer, format string, value interface{}) error {
	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, format)
	}
}
