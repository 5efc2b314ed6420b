package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/web3sanitizer/pkg/clientip"
	"github.com/dmitrymomot/web3sanitizer/pkg/config"
	"github.com/dmitrymomot/web3sanitizer/pkg/httpserver"
	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
	"github.com/dmitrymomot/web3sanitizer/pkg/patterns"
	"github.com/dmitrymomot/web3sanitizer/pkg/requestid"
	"github.com/dmitrymomot/web3sanitizer/pkg/sanitizer"
)

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Name         string `env:"APP_NAME" envDefault:"web3sanitizer"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	FailOpen     bool   `env:"SANITIZE_FAIL_OPEN" envDefault:"false"`
	PatternsFile string `env:"SANITIZE_PATTERNS_FILE"`

	HTTP httpserver.Config
}

// app holds what PersistentPreRunE builds for the subcommands.
type app struct {
	stdin io.Reader

	envFiles     []string
	patternsFile string

	cfg appConfig
	log *slog.Logger
	san *sanitizer.Sanitizer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin}

	root := &cobra.Command{
		Use:          "sanitize",
		Short:        "Validate and normalize Ethereum addresses, ENS names, emails and POAP identifiers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to load before reading the environment")
	root.PersistentFlags().StringVar(&a.patternsFile, "patterns", "", "YAML file with additional formats (overrides SANITIZE_PATTERNS_FILE)")

	root.AddCommand(
		newCheckCmd(a),
		newNormalizeCmd(a),
		newFormatsCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg, a.envFiles...); err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, a.cfg.Name),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(requestid.Extractor(), clientip.Extractor()),
	)

	registry := patterns.Default()
	file := a.cfg.PatternsFile
	if a.patternsFile != "" {
		file = a.patternsFile
	}
	if file != "" {
		if err := registry.LoadFile(file); err != nil {
			return err
		}
		a.log.Debug("loaded extra formats", "file", file, "formats", len(registry.Names()))
	}

	a.san = sanitizer.New(registry, sanitizer.WithLogger(a.log.With(logger.Component("sanitizer"))))
	return nil
}
