package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/tiwariParth/todo/internal/app"
	"github.com/tiwariParth/todo/internal/cli"
	"github.com/tiwariParth/todo/internal/config"
	"github.com/tiwariParth/todo/internal/exitcode"
	"github.com/tiwariParth/todo/internal/logging"
	"github.com/tiwariParth/todo/internal/prompt"
	"github.com/tiwariParth/todo/internal/storage/file"
)

func main() {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitcode.ConfigError)
	}

	// Signals keep their default behaviour so Ctrl-C ends a blocked prompt.
	code := run(context.Background(), wd, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, !color.NoColor)
	os.Exit(code)
}

// run executes one invocation rooted at wd and returns the exit code.
func run(ctx context.Context, wd string, args []string, in io.Reader, out, errOut io.Writer, tty bool) int {
	cfg, err := config.Load(wd)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitcode.ConfigError
	}

	logger := logging.New(errOut, cfg.LogLevel, cfg.LogFormat)
	store := file.NewFileStore(cfg.DBPath, logger)

	todo := cli.NewCLI(
		app.NewTodoApp(store),
		prompt.New(in, out),
		out,
		cfg.Color && tty,
	)

	err = todo.Run(ctx, args)
	if errors.Is(err, cli.ErrUsage) {
		fmt.Fprintf(errOut, "Error: %v\n\n", err)
		cli.Usage(errOut)
	} else if err != nil {
		logger.Error("command failed", "err", err)
	}
	return cli.ExitCode(err)
}
