package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/walkiapp/walki/internal/logger"
	"github.com/walkiapp/walki/internal/models"
)

// SQLiteStore keeps the two persisted blobs in a small key/value table. It is
// selected when the config path carries a .db suffix.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create kv table: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'walki init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// getBlob reads and decodes one kv entry into out. Absence and malformed
// payloads both report not-present; malformed payloads are logged and left
// for the next save to overwrite.
func (s *SQLiteStore) getBlob(key string, out interface{}) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), out); err != nil {
		logger.Warn("Stored blob is malformed, falling back to defaults", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) putBlob(key string, in interface{}) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) deleteBlob(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetDemoState() (models.DemoState, bool, error) {
	var state models.DemoState
	ok, err := s.getBlob(DemoStateKey, &state)
	return state, ok, err
}

func (s *SQLiteStore) SaveDemoState(state models.DemoState) error {
	return s.putBlob(DemoStateKey, state)
}

func (s *SQLiteStore) GetQuizProgress() (models.QuizProgress, bool, error) {
	var progress models.QuizProgress
	ok, err := s.getBlob(QuizProgressKey, &progress)
	return progress, ok, err
}

func (s *SQLiteStore) SaveQuizProgress(progress models.QuizProgress) error {
	return s.putBlob(QuizProgressKey, progress)
}

func (s *SQLiteStore) ClearQuizProgress() error {
	return s.deleteBlob(QuizProgressKey)
}

func (s *SQLiteStore) Reset() error {
	if err := s.deleteBlob(DemoStateKey); err != nil {
		return err
	}
	return s.deleteBlob(QuizProgressKey)
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
