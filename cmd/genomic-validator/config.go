package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configName = ".genomic-validator"
	envPrefix  = "GENOMIC_VALIDATOR"
)

// flagKeys maps command-line flags to their configuration keys.
var flagKeys = map[string]string{
	"log-level":      "log.level",
	"log-format":     "log.format",
	"format":         "output.format",
	"color":          "output.color",
	"history":        "history.enabled",
	"history-path":   "history.path",
	"skip-unchanged": "history.skip-unchanged",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.color", true)
	v.SetDefault("history.enabled", false)
	v.SetDefault("history.skip-unchanged", false)
}

// bindFlags binds every flag defined on cmd that has a configuration key.
func (a *app) bindFlags(cmd *cobra.Command) {
	setDefaults(a.v)
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		if flag != nil {
			a.v.BindPFlag(key, flag) //nolint:errcheck
		}
	}
}

// initConfig reads the config file and environment, then builds the logger.
func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	logger, err := newLogger(a.v.GetString("log.level"), a.v.GetString("log.format"), a.stderr)
	if err != nil {
		return usageError{err}
	}
	a.logger = logger
	return nil
}

// historyPath returns the configured history database path.
func (a *app) historyPath() (string, error) {
	if p := a.v.GetString("history.path"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".genomic-validator", "history.duckdb"), nil
}

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage genomic-validator configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.genomic-validator.yaml.",
		Example: `  genomic-validator config                          # show all config
  genomic-validator config set history.enabled true   # record every run
  genomic-validator config get output.format          # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigShow()
		},
	}

	cmd.AddCommand(a.newConfigSetCmd())
	cmd.AddCommand(a.newConfigGetCmd())

	return cmd
}

func (a *app) newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigSet(args[0], args[1])
		},
	}
}

func (a *app) newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfigGet(args[0])
		},
	}
}

func (a *app) runConfigShow() error {
	out, err := yaml.Marshal(a.v.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(a.stdout, string(out))
	return nil
}

func (a *app) runConfigSet(key, value string) error {
	// Parse boolean-like values
	switch value {
	case "true", "yes", "on":
		a.v.Set(key, true)
	case "false", "no", "off":
		a.v.Set(key, false)
	default:
		a.v.Set(key, value)
	}

	// Ensure config file exists
	cfgFile := a.v.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, configName+".yaml")
	}

	if err := a.v.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(a.stdout, "Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func (a *app) runConfigGet(key string) error {
	val := a.v.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(a.stdout, val)
	return nil
}
