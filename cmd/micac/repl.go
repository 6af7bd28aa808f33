package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/mica/internal/syntax"
	"github.com/you-not-fish/mica/internal/types"
)

const (
	historyFile = ".mica_history"
	promptMain  = "mica> "
	promptCont  = "....> "
	replHelp    = `Enter Mica statements. Definitions persist for the session.
  :help     show this help
  :scope    print the declarations made so far
  :source   print the accepted source
  :reset    forget all declarations
  :quit     leave the REPL`
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runREPL(cmd.OutOrStdout())
		},
	}
}

// session accumulates accepted entries. Each entry is checked by parsing
// it after everything accepted before, so earlier declarations stay visible.
type session struct {
	conf   *syntax.Config
	src    strings.Builder
	nstmts int
	scope  *types.Scope
}

func newSession(conf *syntax.Config) *session {
	return &session{conf: conf}
}

// text returns the session source followed by entry.
func (s *session) text(entry string) string {
	return s.src.String() + entry + "\n"
}

// eval checks entry against the session. On success the entry is kept and
// its statements are returned. On failure the session is unchanged.
func (s *session) eval(entry string) ([]syntax.Stmt, error) {
	p := syntax.NewParser("<repl>", strings.NewReader(s.text(entry)), s.conf)
	prog, err := p.Parse()
	if err != nil {
		return nil, err
	}
	s.src.WriteString(entry + "\n")
	fresh := prog.Stmts[s.nstmts:]
	s.nstmts = len(prog.Stmts)
	s.scope = p.Scope()
	return fresh, nil
}

func (s *session) reset() {
	s.src.Reset()
	s.nstmts = 0
	s.scope = nil
}

func (a *app) runREPL(w io.Writer) error {
	logger := withSession(a.logger, "repl")
	logger.Info("repl started")

	fmt.Fprintf(w, "micac %s interactive session; :help for commands\n", Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sess := newSession(a.parserConfig())
	printer := a.diagnostics(w)
	entries := 0

	for {
		entry, ok := readEntry(ln, sess, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(w)
			break
		}
		if strings.TrimSpace(entry) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))

		if strings.HasPrefix(strings.TrimSpace(entry), ":") {
			if quit := replCommand(w, sess, entry); quit {
				break
			}
			continue
		}

		entries++
		stmts, err := sess.eval(entry)
		if err != nil {
			logger.Debug("entry rejected", "entry", entries, "error", err)
			printer.Error(err, []byte(sess.text(entry)))
			continue
		}
		logger.Debug("entry accepted", "entry", entries, "stmts", len(stmts))
		for _, s := range stmts {
			syntax.Fprint(w, s)
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	logger.Info("repl finished", "entries", entries)
	return nil
}

// readEntry reads lines until they form an entry the parser does not
// consider incomplete. It reports false at end of input.
func readEntry(ln *liner.State, sess *session, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the current entry.
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		entry := b.String()
		if strings.HasPrefix(strings.TrimSpace(entry), ":") || !incomplete(sess, entry) {
			return entry, true
		}
	}
}

// incomplete reports whether entry ends inside an unclosed construct.
func incomplete(sess *session, entry string) bool {
	_, err := syntax.Parse("<repl>", strings.NewReader(sess.text(entry)), sess.conf)
	return syntax.IsIncomplete(err)
}

// replCommand handles a ':' command and reports whether to quit.
func replCommand(w io.Writer, sess *session, line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(w, replHelp)
	case ":scope":
		if sess.scope == nil {
			fmt.Fprintln(w, "(empty)")
			return false
		}
		fmt.Fprint(w, sess.scope)
	case ":source":
		fmt.Fprint(w, sess.src.String())
	case ":reset":
		sess.reset()
		fmt.Fprintln(w, "session cleared")
	default:
		fmt.Fprintf(w, "unknown command %s; :help lists commands\n", fields[0])
	}
	return false
}
