package quiz

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/data"
	"github.com/walkiapp/walki/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walki.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	return &cli.Context{Store: store}
}

func TestQuizFlow(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&StartCmd{}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	// Results before any answers must refuse.
	if err := (&ResultsCmd{}).Run(ctx); err == nil {
		t.Fatal("results on an unanswered quiz should fail")
	}

	for range data.QuizQuestions {
		if err := (&AnswerCmd{Option: "1"}).Run(ctx); err != nil {
			t.Fatalf("answer failed: %v", err)
		}
	}

	if err := (&ResultsCmd{}).Run(ctx); err != nil {
		t.Fatalf("results failed: %v", err)
	}

	// Completing the quiz retargets the persona weights to sum exactly 100.
	demo, err := ctx.Demo()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	total := 0
	for _, w := range demo.State().PersonaWeights {
		total += w
	}
	if total != 100 {
		t.Errorf("persona weights sum = %d, want 100", total)
	}
}

func TestAnswerCmd_OutOfRange(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&StartCmd{}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	tooBig := strconv.Itoa(len(data.QuizQuestions[0].Options) + 1)
	if err := (&AnswerCmd{Option: tooBig}).Run(ctx); err == nil {
		t.Error("out-of-range option number should be rejected")
	}
	if err := (&AnswerCmd{Option: "not-an-option"}).Run(ctx); err == nil {
		t.Error("unknown option id should be rejected")
	}
}

func TestResetCmd(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&StartCmd{}).Run(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := (&AnswerCmd{Option: "1"}).Run(ctx); err != nil {
		t.Fatalf("answer failed: %v", err)
	}
	if err := (&ResetCmd{}).Run(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	qs, err := ctx.Quiz()
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if qs.AnsweredCount() != 0 || qs.Progress().HasStarted {
		t.Errorf("reset should clear progress, got %+v", qs.Progress())
	}
}
