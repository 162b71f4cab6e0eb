package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walkiapp/walki/internal/logger"
	"github.com/walkiapp/walki/internal/models"
)

// document is the on-disk shape of the JSON backend: a tiny key/value record
// holding the two persisted blobs.
type document struct {
	Version      int                  `json:"version"`
	DemoState    *models.DemoState    `json:"walki_demo_state,omitempty"`
	QuizProgress *models.QuizProgress `json:"walki_quiz_progress,omitempty"`
}

type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{Version: 1}
	return s.save()
}

// Load reads the document from disk. A missing file is an initialization
// error; a malformed file is logged and treated as empty so the caller falls
// back to the base state instead of failing.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'walki init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		logger.Warn("Stored state is malformed, falling back to defaults", "path", s.path, "error", err)
		s.doc = &document{Version: 1}
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetDemoState() (models.DemoState, bool, error) {
	if s.doc == nil {
		return models.DemoState{}, false, fmt.Errorf("storage not loaded")
	}
	if s.doc.DemoState == nil {
		return models.DemoState{}, false, nil
	}
	return *s.doc.DemoState, true, nil
}

func (s *JSONStore) SaveDemoState(state models.DemoState) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.DemoState = &state
	return s.save()
}

func (s *JSONStore) GetQuizProgress() (models.QuizProgress, bool, error) {
	if s.doc == nil {
		return models.QuizProgress{}, false, fmt.Errorf("storage not loaded")
	}
	if s.doc.QuizProgress == nil {
		return models.QuizProgress{}, false, nil
	}
	return *s.doc.QuizProgress, true, nil
}

func (s *JSONStore) SaveQuizProgress(progress models.QuizProgress) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.QuizProgress = &progress
	return s.save()
}

func (s *JSONStore) ClearQuizProgress() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.QuizProgress = nil
	return s.save()
}

func (s *JSONStore) Reset() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.DemoState = nil
	s.doc.QuizProgress = nil
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: the store is single-user and not safe for concurrent use
// by multiple processes sharing the same path.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
