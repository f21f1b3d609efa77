package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"fieldoverrides/internal/config"
	"fieldoverrides/internal/logging"
)

var version = "dev"

// app carries what every subcommand needs once the configuration is read.
type app struct {
	cfgFile string
	viper   *viper.Viper
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{viper: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "fieldoverrides",
		Short:         "Resolve per-field display configuration from defaults and override rules",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./"+config.DefaultFile+")")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringP("output", "o", "", "output format (yaml, json)")
	root.PersistentFlags().Bool("auto-min-max", false, "fill missing min/max of numeric fields from the data")

	_ = a.viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))
	_ = a.viper.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	_ = a.viper.BindPFlag("auto_min_max", root.PersistentFlags().Lookup("auto-min-max"))

	root.AddCommand(
		newResolveCmd(a),
		newCheckCmd(a),
		newPropertiesCmd(),
		newMatchersCmd(),
	)

	return root
}

func (a *app) load() error {
	cfg, err := config.Load(a.viper, a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}
