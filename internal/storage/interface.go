package storage

import "github.com/walkiapp/walki/internal/models"

// Storage keys for the two persisted blobs. The SQLite backend uses them as
// kv-table keys; the JSON backend as top-level document fields.
const (
	DemoStateKey    = "walki_demo_state"
	QuizProgressKey = "walki_quiz_progress"
)

// Provider is the device-local persistence port the stores write through
// after each mutation. Implementations must tolerate missing or malformed
// stored data by reporting absence rather than failing, so the stores can
// fall back to the seeded base state.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Demo state blob
	GetDemoState() (models.DemoState, bool, error)
	SaveDemoState(models.DemoState) error

	// Quiz progress blob
	GetQuizProgress() (models.QuizProgress, bool, error)
	SaveQuizProgress(models.QuizProgress) error
	ClearQuizProgress() error

	// Reset clears both blobs.
	Reset() error

	// Utils
	GetConfigPath() string
}
