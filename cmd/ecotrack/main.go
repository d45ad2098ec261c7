package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rshade/ecotrack/internal/cli"
	"github.com/rshade/ecotrack/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run executes the root command and maps its error to a process exit code.
func run(args []string, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCmd(version.GetVersion())
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
