package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/MacroPower/ospath/cmd/ospath/commands"
)

const (
	cmdName = "ospath"

	shortDesc = "OS-aware path resolution."
	longDesc  = `Resolve, relate and inspect path strings the way a target operating
system would, without touching the filesystem.

Use --manipulation=windows to recognize drive ("C:") and UNC ("\\server")
prefixes; the default manipulation treats only a leading separator as a root.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
