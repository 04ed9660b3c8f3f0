package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/yndnr/cribcrack/internal/cli/command"
	"github.com/yndnr/cribcrack/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.NewHandler(time.Second).Context(context.Background())
	err := command.App().RunContext(ctx, os.Args)
	stop()

	if err != nil && !errors.Is(err, command.ErrNotFound) {
		command.PrintError(os.Stderr, "%v", err)
	}
	os.Exit(command.ExitCode(err))
}
