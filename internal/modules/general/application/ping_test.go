package application

import (
	"errors"
	"testing"
	"time"
)

func TestPingInteractor_Execute(t *testing.T) {
	interactor := NewPingInteractor()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	interactor.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(87 * time.Millisecond)
	}

	acknowledged := false
	result, err := interactor.Execute(func() error {
		acknowledged = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !acknowledged {
		t.Error("expected acknowledge to be called")
	}
	if result.Message != "87 ms" {
		t.Errorf("expected message %q, got %q", "87 ms", result.Message)
	}
}

func TestPingInteractor_Execute_RealClock(t *testing.T) {
	interactor := NewPingInteractor()

	result, err := interactor.Execute(func() error {
		time.Sleep(2 * time.Millisecond)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Elapsed < 2*time.Millisecond {
		t.Errorf("expected elapsed to cover the acknowledgment, got %v", result.Elapsed)
	}
}

func TestPingInteractor_Execute_AcknowledgeError(t *testing.T) {
	interactor := NewPingInteractor()
	expectedErr := errors.New("defer failed")

	result, err := interactor.Execute(func() error { return expectedErr })

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}
}
