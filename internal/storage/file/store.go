package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tiwariParth/todo/internal/models"
	"github.com/tiwariParth/todo/internal/storage"
)

// FileStore implements the storage.Storage interface on a single JSON file.
// The file holds a JSON array of tasks; a zero-byte file is an empty list.
// Every call goes back to disk, nothing is cached between calls.
type FileStore struct {
	filePath string
	logger   *log.Logger
}

var _ storage.Storage = (*FileStore)(nil)

// NewFileStore creates a store backed by filePath. A nil logger discards
// debug output.
func NewFileStore(filePath string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{
		filePath: filePath,
		logger:   logger,
	}
}

// Path returns the database file path.
func (f *FileStore) Path() string {
	return f.filePath
}

// EnsureExists opens the database and creates an empty file if it is missing.
func (f *FileStore) EnsureExists(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	file, err := os.Open(f.filePath)
	if err == nil {
		return file.Close()
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to open database: %w", err)
	}

	file, err = os.OpenFile(f.filePath, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer file.Close()

	f.logger.Debug("created database", "path", f.filePath)
	return nil
}

// ReadRaw returns the database contents as stored.
func (f *FileStore) ReadRaw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read database: %w", err)
	}
	return data, nil
}

// Load reads and decodes every task in the database.
func (f *FileStore) Load(ctx context.Context) (models.TaskList, error) {
	data, err := f.ReadRaw(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := decode(data)
	if err != nil {
		return nil, err
	}

	f.logger.Debug("loaded database", "path", f.filePath, "tasks", tasks.Len())
	return tasks, nil
}

// Save overwrites the database with list as indented JSON.
func (f *FileStore) Save(ctx context.Context, list models.TaskList) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(list)
	if err != nil {
		return err
	}

	if err := os.WriteFile(f.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write database: %w", err)
	}

	f.logger.Debug("saved database", "path", f.filePath, "tasks", list.Len())
	return nil
}

func decode(data []byte) (models.TaskList, error) {
	if len(data) == 0 {
		return models.TaskList{}, nil
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	if err := documentSchema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", storage.ErrCorrupt, describe(ve))
		}
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}

	var tasks models.TaskList
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	if tasks == nil {
		tasks = models.TaskList{}
	}
	return tasks, nil
}

func encode(list models.TaskList) ([]byte, error) {
	if list == nil {
		list = models.TaskList{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(list); err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return buf.Bytes(), nil
}

// describe reports the innermost schema failure, which names the offending value.
func describe(ve *jsonschema.ValidationError) string {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return fmt.Sprintf("%s: %s", ve.InstanceLocation, ve.Message)
}
