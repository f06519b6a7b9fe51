package exec

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	ex := New()
	if ex == nil {
		t.Fatal("New() returned nil")
	}
}

func TestRun(t *testing.T) {
	err := New().Run("true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRun_Failure(t *testing.T) {
	err := New().Run("false")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var runErr *RunError
	if !errors.As(err, &runErr) {
		t.Fatalf("expected RunError, got: %T", err)
	}
	if runErr.ExitCode == 0 {
		t.Error("expected non-zero exit code")
	}
	if len(runErr.Command) == 0 || runErr.Command[0] != "false" {
		t.Errorf("expected command to start with 'false', got: %v", runErr.Command)
	}
}

func TestRun_MissingProgram(t *testing.T) {
	err := New().Run("definitely-not-a-real-program-xyz")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestWithDir(t *testing.T) {
	err := New().WithDir("/").Run("true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWithContext_Cancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := New().WithContext(ctx).Run("sleep", "5")
	if err == nil {
		t.Fatal("expected error from canceled context, got nil")
	}
}
