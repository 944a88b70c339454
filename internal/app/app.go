package app

import (
	"context"
	"fmt"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

// TodoApp runs task operations against a store. The store is re-read on
// every call.
type TodoApp struct {
	store storage.Storage
}

func NewTodoApp(store storage.Storage) *TodoApp {
	return &TodoApp{store: store}
}

// Open makes sure the database exists before any other operation.
func (app *TodoApp) Open(ctx context.Context) error {
	return app.store.EnsureExists(ctx)
}

// AddTask appends task to the stored list and returns the new list.
func (app *TodoApp) AddTask(ctx context.Context, task models.Task) (models.TaskList, error) {
	tasks, err := app.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	tasks = tasks.Append(task)
	if err := app.store.Save(ctx, tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	return tasks, nil
}

// Tasks returns the stored tasks. An empty document yields an empty list.
func (app *TodoApp) Tasks(ctx context.Context) (models.TaskList, error) {
	raw, err := app.store.ReadRaw(ctx)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return models.TaskList{}, nil
	}

	tasks, err := app.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	return tasks, nil
}
