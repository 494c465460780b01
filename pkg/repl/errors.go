package repl

import "errors"

var (
	// ErrExit is returned by [Shell.Eval] when the user asked to leave.
	ErrExit = errors.New("exit")

	// ErrUnknownCommand is returned by [Shell.Eval] for an unrecognized
	// command word.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned by [Shell.Eval] when a command is given the wrong
	// arguments or the line cannot be split.
	ErrUsage = errors.New("usage")
)
