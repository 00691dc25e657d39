package domain

import "testing"

func TestNewShutdownResult_Authorized(t *testing.T) {
	result := NewShutdownResult(true)

	if !result.Authorized {
		t.Error("expected Authorized to be true")
	}
	if result.Message != ShutdownAcknowledgedMessage {
		t.Errorf("expected message %q, got %q", ShutdownAcknowledgedMessage, result.Message)
	}
}

func TestNewShutdownResult_Denied(t *testing.T) {
	result := NewShutdownResult(false)

	if result.Authorized {
		t.Error("expected Authorized to be false")
	}
	if result.Message != ShutdownDeniedMessage {
		t.Errorf("expected message %q, got %q", ShutdownDeniedMessage, result.Message)
	}
}
