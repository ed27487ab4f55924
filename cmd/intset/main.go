package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/denismitr/intset/internal/config"
	"github.com/denismitr/intset/internal/shell"
	"github.com/denismitr/intset/registry"
	"github.com/denismitr/intset/set"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "intset",
	Short: "Menu driven playground for ordered integer sets",
	Long: `intset keeps up to ten ordered integer sets in numbered slots and
lets you add and remove elements and combine sets with intersection,
union and difference. Commands are read from stdin.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := registry.New(
			registry.WithSlots(cfg.Registry.Slots),
			registry.WithSetOptions(set.WithCapacity(cfg.Set.Capacity)),
		)
		defer reg.Close()

		logger.Info("shell started",
			zap.Int("slots", reg.Cap()),
			zap.Int("set_capacity", cfg.Set.Capacity),
		)

		sh := shell.New(reg, cmd.InOrStdin(), cmd.OutOrStdout(),
			shell.WithLogger(logger),
			shell.WithPrompt(cfg.Shell.Prompt),
			shell.WithMenu(cfg.Shell.EchoMenu),
		)
		return sh.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if lc.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
