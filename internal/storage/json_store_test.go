package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/models"
)

func newTestState() models.DemoState {
	state := data.SeedDemoState()
	state.Notifications = []models.Notification{
		{
			ID:        "n-1",
			PersonaID: models.PersonaPep,
			Message:   "DAY 18!! You're UNSTOPPABLE!",
			Timestamp: time.Date(2026, 8, 30, 18, 4, 0, 0, time.UTC),
			Context: models.NotificationContext{
				StreakLength: 18, StepsRemaining: 753, StepsTaken: 6247,
				DailyGoal: 7000, TimeOfDay: models.Evening, DayOfWeek: "Sunday",
			},
		},
	}
	return state
}

func newTestProgress(answer *string) models.QuizProgress {
	return models.QuizProgress{
		CurrentQuestionIndex: 1,
		Answers:              []*string{answer, nil, nil},
		HasStarted:           true,
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walki.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	want := newTestState()
	if err := store.SaveDemoState(want); err != nil {
		t.Fatalf("SaveDemoState: %v", err)
	}

	// Fresh store instance reading the same file.
	reread := NewJSONStore(path)
	if err := reread.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, ok, err := reread.GetDemoState()
	if err != nil || !ok {
		t.Fatalf("GetDemoState: ok=%v err=%v", ok, err)
	}

	if got.CurrentStreak != want.CurrentStreak {
		t.Errorf("CurrentStreak = %d, want %d", got.CurrentStreak, want.CurrentStreak)
	}
	if len(got.Calendar) != len(want.Calendar) {
		t.Fatalf("Calendar length = %d, want %d", len(got.Calendar), len(want.Calendar))
	}
	for i := range want.Calendar {
		if got.Calendar[i].Date != want.Calendar[i].Date || got.Calendar[i].Steps != want.Calendar[i].Steps {
			t.Errorf("Calendar[%d] = %+v, want %+v", i, got.Calendar[i], want.Calendar[i])
		}
	}
	if len(got.Notifications) != 1 {
		t.Fatalf("Notifications length = %d, want 1", len(got.Notifications))
	}
	if !got.Notifications[0].Timestamp.Equal(want.Notifications[0].Timestamp) {
		t.Errorf("notification timestamp = %v, want equivalent instant %v",
			got.Notifications[0].Timestamp, want.Notifications[0].Timestamp)
	}
}

func TestJSONStore_QuizProgressRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walki.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	answer := "q1a"
	progress := models.QuizProgress{
		CurrentQuestionIndex: 1,
		Answers:              []*string{&answer, nil, nil},
		HasStarted:           true,
	}
	if err := store.SaveQuizProgress(progress); err != nil {
		t.Fatalf("SaveQuizProgress: %v", err)
	}

	got, ok, err := store.GetQuizProgress()
	if err != nil || !ok {
		t.Fatalf("GetQuizProgress: ok=%v err=%v", ok, err)
	}
	if got.CurrentQuestionIndex != 1 || !got.HasStarted {
		t.Errorf("progress = %+v", got)
	}
	if got.Answers[0] == nil || *got.Answers[0] != "q1a" || got.Answers[1] != nil {
		t.Errorf("answers round-trip mismatch: %v", got.Answers)
	}

	if err := store.ClearQuizProgress(); err != nil {
		t.Fatalf("ClearQuizProgress: %v", err)
	}
	if _, ok, _ := store.GetQuizProgress(); ok {
		t.Error("expected quiz progress to be absent after clear")
	}
}

func TestJSONStore_MalformedFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walki.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load should tolerate malformed data, got %v", err)
	}
	if _, ok, err := store.GetDemoState(); ok || err != nil {
		t.Errorf("expected absent demo state after malformed load, ok=%v err=%v", ok, err)
	}
}

func TestJSONStore_NotInitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected Load to fail when storage was never initialized")
	}
}

func TestJSONStore_Reset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walki.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := store.SaveDemoState(newTestState()); err != nil {
		t.Fatal(err)
	}
	if err := store.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, ok, _ := store.GetDemoState(); ok {
		t.Error("expected demo state to be absent after reset")
	}
}
