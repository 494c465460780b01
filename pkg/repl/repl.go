// Package repl implements an interactive shell for path operations.
package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/MacroPower/ospath/pkg/ospath"
	"github.com/MacroPower/ospath/pkg/pathutil"
)

const helpText = `commands:
  resolve PATH...       resolve paths from left to right
  relative FROM TO      relative path between two absolute paths
  abs PATH              report whether PATH is absolute
  base PATH             last segment of PATH
  mode [default|windows] show or set the manipulation
  help                  show this help
  exit                  leave the shell
Quote paths containing spaces with "..." or '...'; use "" for an empty path.
Backslashes are kept as typed.`

// Shell evaluates one command per line.
type Shell struct {
	in          io.ReadCloser
	out         io.Writer
	errOut      io.Writer
	historyFile string
	m           ospath.Manipulation
	terminal    bool
}

// Option configures a [Shell].
type Option func(*Shell)

// WithIO sets the shell's input and outputs. The input is read as plain
// lines, without terminal line editing.
func WithIO(in io.ReadCloser, out, errOut io.Writer) Option {
	return func(s *Shell) {
		s.in = in
		s.out = out
		s.errOut = errOut
		s.terminal = false
	}
}

// WithHistoryFile persists line history to path.
func WithHistoryFile(path string) Option {
	return func(s *Shell) {
		s.historyFile = path
	}
}

// New creates a [Shell] starting with manipulation m.
func New(m ospath.Manipulation, opts ...Option) *Shell {
	s := &Shell{
		in:       os.Stdin,
		out:      os.Stdout,
		errOut:   os.Stderr,
		m:        m,
		terminal: true,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Manipulation returns the shell's current manipulation.
func (s *Shell) Manipulation() ospath.Manipulation {
	return s.m
}

// Eval evaluates a single line and returns its output.
func (s *Shell) Eval(line string) (string, error) {
	fields, err := splitFields(line)
	if err != nil {
		return "", err
	}

	if len(fields) == 0 {
		return "", nil
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "resolve":
		return ospath.ResolveN(args, s.m), nil
	case "relative":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: relative FROM TO", ErrUsage)
		}

		return ospath.Relative(args[0], args[1], s.m)
	case "abs":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: abs PATH", ErrUsage)
		}

		return strconv.FormatBool(ospath.IsAbsolute(args[0], s.m)), nil
	case "base":
		if len(args) != 1 {
			return "", fmt.Errorf("%w: base PATH", ErrUsage)
		}

		return pathutil.BaseName(args[0]), nil
	case "mode":
		switch len(args) {
		case 0:
			return s.m.String(), nil
		case 1:
			m, err := ospath.ParseManipulation(args[0])
			if err != nil {
				return "", err
			}

			slog.Debug("changed manipulation", slog.String("from", s.m.String()), slog.String("to", m.String()))
			s.m = m

			return m.String(), nil
		}

		return "", fmt.Errorf("%w: mode [default|windows]", ErrUsage)
	case "help":
		return helpText, nil
	case "exit", "quit":
		return "", ErrExit
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
}

// splitFields splits line on whitespace. Text between a pair of single or
// double quotes is kept together, and an empty pair yields an empty field.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		field   strings.Builder
		quote   rune
		inField bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				field.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inField = true
		case unicode.IsSpace(r):
			if inField {
				fields = append(fields, field.String())
				field.Reset()
				inField = false
			}
		default:
			field.WriteRune(r)
			inField = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated %c quote", ErrUsage, quote)
	}

	if inField {
		fields = append(fields, field.String())
	}

	return fields, nil
}

func (s *Shell) prompt() string {
	return fmt.Sprintf("ospath(%s)> ", s.m)
}

// Run reads lines until EOF, "exit" or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	config := &readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     s.historyFile,
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	}

	if !s.terminal {
		config.Stdin = s.in
		config.Stdout = s.out
		config.Stderr = s.errOut
		config.FuncIsTerminal = func() bool { return false }
		config.FuncMakeRaw = func() error { return nil }
		config.FuncExitRaw = func() error { return nil }
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("create readline: %w", err)
	}
	defer rl.Close()

	for ctx.Err() == nil {
		rl.SetPrompt(s.prompt())

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}

		out, err := s.Eval(line)
		if errors.Is(err, ErrExit) {
			return nil
		}

		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)

			continue
		}

		if out != "" {
			fmt.Fprintln(s.out, out)
		}
	}

	return ctx.Err()
}
