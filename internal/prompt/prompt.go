// Package prompt collects a task interactively, one line at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tiwariParth/todo/internal/models"
)

// ErrInputClosed is returned when input ends before a line could be read.
var ErrInputClosed = errors.New("input closed")

type flusher interface {
	Flush() error
}

// Prompter reads answers from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// PromptTask asks for a description and an importance, re-asking for the
// importance until one of HIGH, MID or LOW is given.
func (p *Prompter) PromptTask() (models.Task, error) {
	fmt.Fprintln(p.out, "Add a task description.")
	if err := p.ask("Description: "); err != nil {
		return models.Task{}, err
	}
	description, err := p.readLine()
	if err != nil {
		return models.Task{}, fmt.Errorf("read description: %w", err)
	}

	importance, err := p.promptImportance()
	if err != nil {
		return models.Task{}, err
	}

	return models.NewTask(description, importance), nil
}

func (p *Prompter) promptImportance() (models.Importance, error) {
	for {
		fmt.Fprintln(p.out, "What is the importance of the task? (HIGH, MID, LOW)")
		if err := p.ask("Importance: "); err != nil {
			return 0, err
		}

		answer, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("read importance: %w", err)
		}

		importance, err := models.ParseImportance(answer)
		if err == nil {
			return importance, nil
		}
		fmt.Fprintf(p.out, "%s was not an option. Choose from HIGH, MID, or LOW\n", answer)
	}
}

func (p *Prompter) ask(question string) error {
	fmt.Fprint(p.out, question)
	if f, ok := p.out.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush prompt: %w", err)
		}
	}
	return nil
}

// readLine returns the next line with surrounding whitespace removed.
// A last line without a newline is still returned.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrInputClosed
			}
		} else {
			return "", err
		}
	}
	return strings.TrimSpace(line), nil
}
