package system

import (
	"testing"
)

func TestDoctorCmd_Healthy(t *testing.T) {
	ctx := setupTestContext(t)
	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err != nil {
		t.Errorf("doctor failed on healthy storage: %v", err)
	}
}

func TestDoctorCmd_Uninitialized(t *testing.T) {
	ctx := setupTestContext(t)

	cmd := &DoctorCmd{}
	if err := cmd.Run(ctx); err == nil {
		t.Error("doctor should fail when storage was never initialized")
	}
}

func TestCheckLibrary(t *testing.T) {
	if err := checkLibrary(); err != nil {
		t.Errorf("built-in notification library should pass validation: %v", err)
	}
}
