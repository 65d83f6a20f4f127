package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewRootCommand creates the repuestos command tree. Viper is reset so every
// tree starts from its own flags, environment and config file.
func NewRootCommand(info BuildInfo) *cobra.Command {
	viper.Reset()

	rootCmd := &cobra.Command{
		Use:   "repuestos",
		Short: "Spare parts admin API CLI",
		Long: `A command-line interface for the spare parts admin API.

Manage customers, parts, sales, OEM code equivalences, suppliers and users,
or run a local development API with dev-server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.repuestos/config.yml)")
	flags.StringP("api", "a", "", "API endpoint URL")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "verbose output")
	flags.Int("retry-max", 0, "retries for transient failures (0 disables retries)")
	flags.String("nats-url", "", "NATS server URL for change events")

	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag(keyAPI, flags.Lookup("api"))
	_ = viper.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(keyVerbose, flags.Lookup("verbose"))
	_ = viper.BindPFlag(keyRetryMax, flags.Lookup("retry-max"))
	_ = viper.BindPFlag(keyNATSURL, flags.Lookup("nats-url"))

	rootCmd.AddCommand(NewVersionCommand(info))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewClientesCommand())
	rootCmd.AddCommand(NewRepuestosCommand())
	rootCmd.AddCommand(NewVentasCommand())
	rootCmd.AddCommand(NewEquivalenciasCommand())
	rootCmd.AddCommand(NewProveedoresCommand())
	rootCmd.AddCommand(NewUsuariosCommand())
	rootCmd.AddCommand(NewDashboardCommand())
	rootCmd.AddCommand(NewDevServerCommand())

	return rootCmd
}

func initConfig() error {
	// A missing .env file is fine; a malformed one is not.
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfgFile := viper.GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		viper.AddConfigPath(filepath.Join(home, constants.ConfigDirName))
		viper.SetConfigType(constants.ConfigFileType)
		viper.SetConfigName(constants.ConfigFileName)
	}

	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(keyVerbose) {
			_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}

	return nil
}
