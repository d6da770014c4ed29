package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/oklog/run"

	"scanpro/cmd/scanpro-cli/commands"
)

const (
	// Version is the application version (set via ldflags).
	Version = "dev"
)

// Run runs the main application.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := commands.NewRootCommand(Version, stdout, stderr)

	rootCmd.Cmd.AddCommand(commands.NewOperationCommands(rootCmd)...)
	rootCmd.Cmd.AddCommand(
		commands.NewSplitStatusCommand(rootCmd),
		commands.NewDownloadCommand(rootCmd),
	)
	rootCmd.Cmd.SetArgs(args[1:])

	var g run.Group

	// OS signals.
	{
		signalCtx, signalCancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer signalCancel()

		g.Add(
			func() error {
				<-signalCtx.Done()
				return nil
			},
			func(_ error) {
				signalCancel()
			},
		)
	}

	// Execute command.
	{
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		g.Add(
			func() error {
				return rootCmd.Cmd.ExecuteContext(ctx)
			},
			func(_ error) {
				cancel()
			},
		)
	}

	return g.Run()
}

func main() {
	// A missing .env is fine, the environment may already be set.
	_ = godotenv.Load()

	ctx := context.Background()
	err := Run(ctx, os.Args, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
