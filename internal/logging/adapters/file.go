package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"careercompass-jobs/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for append-only file output
type FileAdapter struct {
	name string
	file *os.File
	mu   sync.Mutex
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string `yaml:"file_path"`
	CreateDirs bool   `yaml:"create_dirs"`
}

// NewFileAdapter creates a new file adapter
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directories: %w", err)
		}
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileAdapter{
		name: name,
		file: file,
	}, nil
}

// Write writes a log entry to the file
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	logData := map[string]interface{}{
		"level":   entry.Level.String(),
		"message": entry.Message,
		"time":    entry.Timestamp.Format(time.RFC3339),
	}
	for k, v := range entry.Fields {
		logData[k] = v
	}

	data, err := json.Marshal(logData)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.file, string(data))
	return err
}

// Close closes the file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.file.Close()
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}
