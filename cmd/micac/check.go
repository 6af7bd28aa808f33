package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/mica/internal/diag"
)

func newCheckCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check files and report the first error in each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, quiet)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failures")
	return cmd
}

// runCheck parses every file and reports its first error. It fails if any
// file fails.
func (a *app) runCheck(stdout, stderr io.Writer, files []string, quiet bool) error {
	out := a.diagnostics(stdout)
	errOut := a.diagnostics(stderr)

	failed := 0
	for _, filename := range files {
		if !a.checkFile(out, errOut, filename, quiet) {
			failed++
		}
	}

	if len(files) > 1 && !quiet {
		out.Summary(len(files), failed)
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

// checkFile parses one file and reports the outcome. It reports whether
// the file is free of errors.
func (a *app) checkFile(out, errOut *diag.Printer, filename string, quiet bool) bool {
	start := time.Now()
	prog, _, src, err := a.parseFile(filename)
	if err != nil {
		errOut.Error(err, src)
		a.logger.Debug("check failed", "file", filename, "elapsed", time.Since(start))
		return false
	}
	a.logger.Debug("check passed", "file", filename, "stmts", len(prog.Stmts), "elapsed", time.Since(start))
	if !quiet {
		out.OK(filename)
	}
	return true
}
