package models

import (
	"fmt"
	"strings"
)

// Importance represents how much a task matters.
type Importance int

const (
	Low Importance = iota
	Mid
	High
)

// Importances lists every accepted importance, highest first.
var Importances = []Importance{High, Mid, Low}

// String returns the upper-case token used on disk and on screen.
func (i Importance) String() string {
	switch i {
	case High:
		return "HIGH"
	case Mid:
		return "MID"
	case Low:
		return "LOW"
	default:
		return fmt.Sprintf("Importance(%d)", int(i))
	}
}

// Valid reports whether i is one of the three known levels.
func (i Importance) Valid() bool {
	return i == High || i == Mid || i == Low
}

// ParseImportance converts user or file input into an Importance.
// Surrounding whitespace is ignored and matching is case-insensitive.
func ParseImportance(s string) (Importance, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return High, nil
	case "MID":
		return Mid, nil
	case "LOW":
		return Low, nil
	default:
		return 0, fmt.Errorf("unknown importance %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (i Importance) MarshalText() ([]byte, error) {
	if !i.Valid() {
		return nil, fmt.Errorf("cannot encode %s", i)
	}
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Only the exact
// upper-case tokens are accepted, which is what Save always writes.
func (i *Importance) UnmarshalText(text []byte) error {
	switch string(text) {
	case "HIGH":
		*i = High
	case "MID":
		*i = Mid
	case "LOW":
		*i = Low
	default:
		return fmt.Errorf("unknown importance %q", string(text))
	}
	return nil
}

// Task represents a single todo item.
type Task struct {
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Importance  Importance `json:"importance"`
}

// NewTask creates a pending task.
func NewTask(description string, importance Importance) Task {
	return Task{
		Description: strings.TrimSpace(description),
		Completed:   false,
		Importance:  importance,
	}
}

// Status returns a human readable completion state.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// TaskList is the insertion-ordered collection persisted by a store.
type TaskList []Task

// Append returns the list with t added at the tail.
func (l TaskList) Append(t Task) TaskList {
	return append(l, t)
}

// Len returns the number of tasks.
func (l TaskList) Len() int { return len(l) }
