package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mica/internal/syntax"
)

func newParseCmd(a *app) *cobra.Command {
	var format string
	var showScope bool

	cmd := &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a file and print its typed AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Output.ASTFormat
			}
			return a.runParse(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], format, showScope)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "AST output format: text, json or yaml (default from config)")
	cmd.Flags().BoolVar(&showScope, "scope", false, "print the program scope after the AST")
	return cmd
}

// runParse parses filename and writes the AST in the given format.
func (a *app) runParse(stdout, stderr io.Writer, filename, format string, showScope bool) error {
	start := time.Now()
	prog, p, src, err := a.parseFile(filename)
	if err != nil {
		if src == nil {
			return err
		}
		a.diagnostics(stderr).Error(err, src)
		return errFailed
	}
	a.logger.Debug("parsed", "file", filename, "stmts", len(prog.Stmts), "elapsed", time.Since(start))

	switch strings.ToLower(format) {
	case "json":
		err = syntax.FprintJSON(stdout, prog)
	case "yaml":
		err = syntax.FprintYAML(stdout, prog)
	case "text":
		syntax.Fprint(stdout, prog)
	default:
		return fmt.Errorf("unknown AST format %q (want text, json or yaml)", format)
	}
	if err != nil {
		return err
	}

	if showScope {
		fmt.Fprint(stdout, p.Scope())
	}
	return nil
}
