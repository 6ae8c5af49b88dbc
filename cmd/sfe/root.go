// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sfecode/internal/config"
	"github.com/katalvlaran/sfecode/internal/logging"
	"github.com/katalvlaran/sfecode/textio"
	"github.com/spf13/cobra"
)

var errOutputWithMany = errors.New("sfe: --out needs exactly one sequence file")

// app carries the resolved settings shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	logJSON    bool
	format     string
	workers    int

	cfg    config.Config
	log    *slog.Logger
	output textio.Format
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sfe",
		Short:         "Shannon–Fano–Elias coding over the alphabet +-*/=",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")
	pf.StringVar(&a.format, "format", "", "report format: text or yaml")
	pf.IntVar(&a.workers, "workers", 0, "files processed at once (0 = number of CPUs)")

	root.AddCommand(
		newTableCmd(a),
		newCodecCmd(a, modeEncode),
		newCodecCmd(a, modeDecode),
		newGenCmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("sfe: invalid settings: %w", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	format, err := textio.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.output = format
	a.log = logging.New(logging.Config{
		Level:   level,
		JSON:    cfg.Log.JSON,
		Service: "sfe",
		Writer:  cmd.ErrOrStderr(),
	})
	a.log.Debug("settings resolved",
		"config", a.configPath,
		"format", string(format),
		"workers", cfg.Batch.Workers,
	)

	return nil
}
