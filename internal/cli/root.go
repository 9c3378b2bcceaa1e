package cli

import (
	"errors"
	"fmt"

	"github.com/jzelinskie/cobrautil/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/internal/config"
	srvErrors "github.com/tupyy/record-manager/pkg/errors"
)

// EnvPrefix is the prefix of environment variables overriding flags,
// e.g. RECORDS_LOG_LEVEL=debug.
const EnvPrefix = "RECORDS"

// flag name → configuration key
var configKeys = map[string]string{
	"log-level":        "log-level",
	"log-format":       "log-format",
	"db":               "storage.database-path",
	"slot-key":         "storage.slot-key",
	"seed-demo":        "storage.seed-demo",
	"persist-retries":  "storage.persist-retries",
	"per-page-choices": "view.per-page-choices",
	"per-page":         "view.per-page",
	"server-mode":      "server.mode",
	"http-port":        "server.http-port",
}

type rootOptions struct {
	configFile string
	cfg        *config.Configuration
	confirm    Confirmer
}

// NewRootCommand builds the record-manager command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(huhConfirm)
}

func newRootCommand(confirm Confirmer) *cobra.Command {
	opts := &rootOptions{confirm: confirm}
	defaults := config.NewConfigurationWithOptionsAndDefaults()

	root := &cobra.Command{
		Use:           "record-manager",
		Short:         "Manage user records",
		Long:          "record-manager keeps a list of user records in a local DuckDB file and lets you search, sort, page, edit and export them from the terminal or over HTTP.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cobrautil.SyncViperPreRunE(EnvPrefix)(cmd, args); err != nil {
				return err
			}
			cfg, err := loadConfiguration(cmd, opts.configFile)
			if err != nil {
				return err
			}
			if err := setupLogger(cfg.LogLevel, cfg.LogFormat); err != nil {
				return err
			}
			zap.S().Named("cli").Debugw("configuration loaded", "config", cfg.DebugMap())
			opts.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configFile, "config", "c", "", "configuration file (yaml, json or toml)")
	pf.String("log-level", defaults.LogLevel, "log level: debug, info, warn, error")
	pf.String("log-format", defaults.LogFormat, "log format: console or json")
	pf.String("db", defaults.Storage.DatabasePath, "DuckDB file holding the records (:memory: for a throwaway store)")
	pf.String("slot-key", defaults.Storage.SlotKey, "storage slot holding the record set")
	pf.Bool("seed-demo", defaults.Storage.SeedDemo, "install demo records when the store is empty")
	pf.Uint("persist-retries", defaults.Storage.PersistRetries, "write attempts before a storage error is reported")
	pf.IntSlice("per-page-choices", defaults.View.PerPageChoices, "page sizes offered by the view")
	pf.Int("per-page", defaults.View.DefaultPerPage, "records per page")

	root.AddCommand(
		newServeCommand(opts),
		newListCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
		newCopyCommand(opts),
		newBulkDeleteCommand(opts),
		newClearCommand(opts),
		newResetCommand(opts),
		newExportCommand(opts),
	)

	return root
}

// loadConfiguration layers defaults, the optional config file and the
// flags (which already carry environment overrides).
func loadConfiguration(cmd *cobra.Command, configFile string) (*config.Configuration, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configFile, err)
		}
	}

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := config.NewConfigurationWithOptionsAndDefaults()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bindFlags binds the flags of fs that carry configuration to their keys.
// Flags not registered on fs are skipped.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range configKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", name, err)
		}
	}
	return nil
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case srvErrors.IsValidationError(err):
		return 2
	case srvErrors.IsConfirmationRequiredError(err), errors.Is(err, ErrAborted):
		return 3
	default:
		return 1
	}
}
