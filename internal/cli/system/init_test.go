package system

import (
	"path/filepath"
	"testing"

	"github.com/walkiapp/walki/internal/cli"
	"github.com/walkiapp/walki/internal/storage"
)

func setupTestContext(t *testing.T) *cli.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "walki.json")
	return &cli.Context{Store: storage.NewJSONStore(path)}
}

func TestInitCmd_SeedsDemoState(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	demo, err := ctx.Demo()
	if err != nil {
		t.Fatalf("load after init failed: %v", err)
	}
	if demo.State().CurrentStreak != 18 {
		t.Errorf("seeded streak = %d, want 18", demo.State().CurrentStreak)
	}
}

func TestInitCmd_RefusesReInit(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &InitCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := cmd.Run(ctx); err == nil {
		t.Error("second init without --force should fail")
	}
}

func TestInitCmd_ForceReInit(t *testing.T) {
	ctx := setupTestContext(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Errorf("forced re-init failed: %v", err)
	}
}
