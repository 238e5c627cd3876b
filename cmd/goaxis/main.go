package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goaxis/internal/logging"
	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/philipparndt/goaxis/pkg/config"
	"github.com/philipparndt/goaxis/version"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "goaxis",
		Short: "Construction axis generator for architectural plans",
		Long: `goaxis generates construction axes for architectural drawings: a family of
line segments laid out along a baseline, each with a distance, an angle and
a bubble number.

Axis systems are read from YAML or TOML definition files. Commands accept
files or doublestar patterns such as "plans/**/*.yaml".`,
		Version:           version.GetFullVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(
		newGenerateCmd(a),
		newLabelCmd(a),
		newInfoCmd(a),
		newPlotCmd(a),
		newWatchCmd(a),
		newNewCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// setup configures logging and loads the layered configuration
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)

	cfg, err := config.NewLoader(logger).Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	return nil
}

// loadSystems expands args and resolves every definition file they name
func (a *app) loadSystems(args []string) ([]*axisfile.System, error) {
	files, err := axisfile.Glob(args...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no definition files in %v", args)
	}

	systems := make([]*axisfile.System, 0, len(files))
	for _, file := range files {
		sys, err := axisfile.Load(file, a.cfg)
		if err != nil {
			return nil, err
		}
		systems = append(systems, sys)
	}
	return systems, nil
}
