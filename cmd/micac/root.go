package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mica/internal/config"
	"github.com/you-not-fish/mica/internal/diag"
	"github.com/you-not-fish/mica/internal/syntax"
)

// errFailed is returned by commands whose diagnostics were already reported.
var errFailed = errors.New("failed")

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "micac",
		Short: "Mica front end",
		Long: `micac scans, parses and checks Mica programs.

Parsing, name resolution and type checking happen in a single pass;
the first error stops the parse and is reported with its position.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
		newReplCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.cfgFile)
	if err != nil {
		return err
	}
	if a.noColor || os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}
	a.cfg = cfg

	logger, closeLog, err := newLogger(cfg.Log, a.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger
	a.closeLog = closeLog

	logger.Debug("configuration loaded",
		"config", a.cfgFile,
		"max_depth", cfg.Parser.MaxDepth,
		"ast_format", cfg.Output.ASTFormat)
	return nil
}

func (a *app) parserConfig() *syntax.Config {
	return &syntax.Config{MaxDepth: a.cfg.Parser.MaxDepth}
}

func (a *app) diagnostics(w io.Writer) *diag.Printer {
	return diag.NewPrinter(w, a.cfg.Output.Color)
}

// parseFile reads and parses filename. src is returned for diagnostics
// even when parsing fails.
func (a *app) parseFile(filename string) (prog *syntax.Program, p *syntax.Parser, src []byte, err error) {
	src, err = os.ReadFile(filename)
	if err != nil {
		return nil, nil, nil, err
	}
	p = syntax.NewParser(filename, bytes.NewReader(src), a.parserConfig())
	prog, err = p.Parse()
	return prog, p, src, err
}
