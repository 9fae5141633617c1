package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"svw.info/sudokukit/internal/cli"
)

func main() {
	// Minimal logger until the command tree configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	root := cli.NewRootCommand(os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.Execute()
}
