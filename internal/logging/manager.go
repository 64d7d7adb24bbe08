package logging

import (
	"fmt"

	"careercompass-jobs/internal/config"
	"careercompass-jobs/internal/logging/adapters"
	"careercompass-jobs/internal/logging/types"
)

// Manager manages the logging system initialization and configuration
type Manager struct {
	logger *MultiLogger
}

// NewManager creates a new logging manager
func NewManager() *Manager {
	return &Manager{
		logger: NewMultiLogger(),
	}
}

// Initialize initializes the logging system from configuration
func (m *Manager) Initialize(cfg *config.Config) error {
	m.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	if len(cfg.Logging.Adapters) == 0 {
		// Default to a stdout adapter matching the configured format
		adapter := adapters.NewStdoutAdapter("stdout", adapters.StdoutConfig{
			Format: cfg.Logging.Format,
		})
		return m.logger.AddAdapter(adapter)
	}

	for _, ac := range cfg.Logging.Adapters {
		if !ac.Enabled {
			continue
		}

		adapter, err := createAdapter(types.AdapterConfig{
			Name:    ac.Name,
			Type:    ac.Type,
			Enabled: ac.Enabled,
			Options: ac.Options,
		})
		if err != nil {
			return fmt.Errorf("failed to create adapter %s: %w", ac.Name, err)
		}

		if err := m.logger.AddAdapter(adapter); err != nil {
			return fmt.Errorf("failed to add adapter %s: %w", ac.Name, err)
		}
	}

	return nil
}

// createAdapter creates a logging adapter based on the provided configuration
func createAdapter(ac types.AdapterConfig) (types.LogAdapter, error) {
	switch ac.Type {
	case "stdout":
		return adapters.NewStdoutAdapter(ac.Name, adapters.StdoutConfig{
			Format: getStringOption(ac.Options, "format", "json"),
		}), nil
	case "file":
		return adapters.NewFileAdapter(ac.Name, adapters.FileConfig{
			FilePath:   getStringOption(ac.Options, "file_path", ""),
			CreateDirs: getBoolOption(ac.Options, "create_dirs", true),
		})
	default:
		return nil, fmt.Errorf("unsupported adapter type: %s", ac.Type)
	}
}

// GetLogger returns the initialized logger
func (m *Manager) GetLogger() Logger {
	return m.logger
}

// Close closes the logging system
func (m *Manager) Close() error {
	if m.logger != nil {
		return m.logger.Close()
	}
	return nil
}

// Global manager instance
var globalManager *Manager

// InitializeLogging initializes the global logging system
func InitializeLogging(cfg *config.Config) error {
	globalManager = NewManager()
	return globalManager.Initialize(cfg)
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	if globalManager == nil {
		manager := NewManager()
		adapter := adapters.NewStdoutAdapter("fallback_stdout", adapters.StdoutConfig{Format: "json"})
		manager.logger.AddAdapter(adapter)
		globalManager = manager
	}
	return globalManager.GetLogger()
}

// CloseLogging closes the global logging system
func CloseLogging() error {
	if globalManager != nil {
		return globalManager.Close()
	}
	return nil
}

// LogWithRequestID creates a logger with request ID context
func LogWithRequestID(requestID string) Logger {
	return GetGlobalLogger().WithField("request_id", requestID)
}

func getStringOption(options map[string]interface{}, key string, defaultValue string) string {
	if value, exists := options[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return defaultValue
}

func getBoolOption(options map[string]interface{}, key string, defaultValue bool) bool {
	if value, exists := options[key]; exists {
		if boolVal, ok := value.(bool); ok {
			return boolVal
		}
	}
	return defaultValue
}
