package prompt

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tiwariParth/todo/internal/models"
)

func TestPromptTask(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantDesc    string
		wantImp     models.Importance
		wantRejects int
	}{
		{name: "lower case importance", input: "Buy milk\nhigh\n", wantDesc: "Buy milk", wantImp: models.High},
		{name: "upper case importance", input: "B\nMID\n", wantDesc: "B", wantImp: models.Mid},
		{name: "re-prompt on unknown token", input: "task\nURGENT\nlow\n", wantDesc: "task", wantImp: models.Low, wantRejects: 1},
		{name: "several rejects", input: "x\n\nmedium\n  Low  \n", wantDesc: "x", wantImp: models.Low, wantRejects: 2},
		{name: "trims description", input: "   spaced out \t\r\nHIGH\r\n", wantDesc: "spaced out", wantImp: models.High},
		{name: "empty description accepted", input: "\nLOW\n", wantDesc: "", wantImp: models.Low},
		{name: "last line without newline", input: "task\nmid", wantDesc: "task", wantImp: models.Mid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tt.input), &out)

			task, err := p.PromptTask()
			if err != nil {
				t.Fatalf("PromptTask failed: %v", err)
			}
			if task.Description != tt.wantDesc {
				t.Errorf("description = %q, want %q", task.Description, tt.wantDesc)
			}
			if task.Importance != tt.wantImp {
				t.Errorf("importance = %s, want %s", task.Importance, tt.wantImp)
			}
			if task.Completed {
				t.Error("new task should not be completed")
			}

			questions := strings.Count(out.String(), "Importance: ")
			if questions != tt.wantRejects+1 {
				t.Errorf("asked for importance %d times, want %d", questions, tt.wantRejects+1)
			}
			rejects := strings.Count(out.String(), "was not an option. Choose from HIGH, MID, or LOW")
			if rejects != tt.wantRejects {
				t.Errorf("rejected %d answers, want %d", rejects, tt.wantRejects)
			}
		})
	}
}

func TestPromptTaskTranscript(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("task\nURGENT\nlow\n"), &out)

	if _, err := p.PromptTask(); err != nil {
		t.Fatal(err)
	}

	want := "Add a task description.\n" +
		"Description: " +
		"What is the importance of the task? (HIGH, MID, LOW)\n" +
		"Importance: " +
		"URGENT was not an option. Choose from HIGH, MID, or LOW\n" +
		"What is the importance of the task? (HIGH, MID, LOW)\n" +
		"Importance: "
	if out.String() != want {
		t.Errorf("transcript mismatch\nwant: %q\ngot:  %q", want, out.String())
	}
}

func TestPromptTaskInputClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no input", input: ""},
		{name: "closed before importance", input: "task\n"},
		{name: "closed after rejected importance", input: "task\nnope\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(strings.NewReader(tt.input), &bytes.Buffer{})

			_, err := p.PromptTask()
			if !errors.Is(err, ErrInputClosed) {
				t.Fatalf("expected ErrInputClosed, got %v", err)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestPromptTaskReadError(t *testing.T) {
	p := New(failingReader{}, &bytes.Buffer{})

	_, err := p.PromptTask()
	if err == nil || errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestPromptFlushesBufferedOutput(t *testing.T) {
	var sink bytes.Buffer
	w := bufio.NewWriter(&sink)
	p := New(strings.NewReader("a\nlow\n"), w)

	if _, err := p.PromptTask(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(sink.String(), "Importance: ") {
		t.Errorf("prompt not flushed, sink has %q", sink.String())
	}
}
