package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tiwariParth/todo/internal/app"
	"github.com/tiwariParth/todo/internal/exitcode"
	"github.com/tiwariParth/todo/internal/prompt"
)

// ErrUsage is returned for a missing or unknown subcommand or stray arguments.
var ErrUsage = errors.New("usage error")

// EmptyMessage is printed by read when there is nothing to show.
const EmptyMessage = "Your todo list is empty. Great job partner."

const usageText = `Usage:
  todo add        Add to todo list
  todo complete   Mark task as complete
  todo read       Show the todo list
  todo help       Print usage
`

// CLI represents the command-line interface.
type CLI struct {
	App      *app.TodoApp
	Prompter *prompt.Prompter
	Out      io.Writer
	colors   palette
}

// NewCLI initializes a new CLI writing results to out.
func NewCLI(a *app.TodoApp, p *prompt.Prompter, out io.Writer, colorEnabled bool) *CLI {
	return &CLI{
		App:      a,
		Prompter: p,
		Out:      out,
		colors:   newPalette(colorEnabled),
	}
}

// Run executes the CLI based on the provided arguments.
func (c *CLI) Run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: no command provided", ErrUsage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "help", "-h", "--help":
		Usage(c.Out)
		return nil
	case "add", "complete", "read":
	default:
		return fmt.Errorf("%w: unknown command: %s", ErrUsage, cmd)
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, cmd, strings.Join(rest, " "))
	}

	if err := c.App.Open(ctx); err != nil {
		return err
	}

	switch cmd {
	case "add":
		return c.add(ctx)
	case "complete":
		fmt.Fprintln(c.Out, "Task complete")
		return nil
	default:
		return c.read(ctx)
	}
}

func (c *CLI) add(ctx context.Context) error {
	task, err := c.Prompter.PromptTask()
	if err != nil {
		return err
	}

	if _, err := c.App.AddTask(ctx, task); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	fmt.Fprintf(c.Out, "Adding task with description: '%s' and importance %s\n", task.Description, task.Importance)
	return nil
}

func (c *CLI) read(ctx context.Context) error {
	tasks, err := c.App.Tasks(ctx)
	if err != nil {
		return fmt.Errorf("failed to read tasks: %w", err)
	}
	if tasks.Len() == 0 {
		fmt.Fprintln(c.Out, EmptyMessage)
		return nil
	}

	for i, task := range tasks {
		fmt.Fprintf(c.Out, "%d. %s [%s] - %s\n",
			i+1,
			c.colors.Bold(displayDescription(task.Description)),
			c.colors.importance(task.Importance),
			c.colors.status(task))
	}
	return nil
}

// displayDescription keeps each task on a single line and marks blank ones.
func displayDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")
	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}

// Usage writes the usage text to w.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, ErrUsage):
		return exitcode.UsageError
	case errors.Is(err, prompt.ErrInputClosed):
		return exitcode.InputError
	default:
		return exitcode.StoreError
	}
}
