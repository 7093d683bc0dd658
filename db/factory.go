package db

import "fmt"

// BackendType represents the type of database backend
type BackendType string

const (
	// MemoryBackendType keeps records in a process-wide map
	MemoryBackendType BackendType = "memory"

	// LevelDBBackendType uses the LevelDB implementation
	LevelDBBackendType BackendType = "leveldb"

	// BoltBackendType uses the bbolt implementation
	BoltBackendType BackendType = "bolt"
)

// BackendConfig holds configuration for creating providers
type BackendConfig struct {
	// Type specifies which backend implementation to use
	Type BackendType `json:"type" yaml:"type"`

	// Path is the database directory (LevelDB) or file (bbolt) path
	Path string `json:"path" yaml:"path"`
}

// Validate validates the backend configuration
func (bc *BackendConfig) Validate() error {
	if bc.Type == "" {
		return fmt.Errorf("backend type cannot be empty")
	}

	switch bc.Type {
	case MemoryBackendType:
		return nil
	case LevelDBBackendType, BoltBackendType:
		if bc.Path == "" {
			return fmt.Errorf("path cannot be empty for %s backend", bc.Type)
		}
		return nil
	default:
		return fmt.Errorf("unsupported backend type: %s", bc.Type)
	}
}

// NewProvider creates the provider described by the configuration
func NewProvider(cfg BackendConfig) (DatabaseProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Type {
	case MemoryBackendType:
		return NewMemoryProvider(), nil
	case LevelDBBackendType:
		return NewLevelDBProvider(cfg.Path)
	case BoltBackendType:
		return NewBoltProvider(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.Type)
	}
}
