package domain

import "testing"

func TestNewHelpResult(t *testing.T) {
	result := NewHelpResult([]string{"help", "ping", "shutdown"})

	expected := "Currently available commands: `/help`, `/ping`, `/shutdown`."
	if result.Message != expected {
		t.Errorf("expected message %q, got %q", expected, result.Message)
	}
}

func TestNewHelpResult_Empty(t *testing.T) {
	result := NewHelpResult(nil)

	if result.Message != "Currently available commands: ." {
		t.Errorf("unexpected message %q", result.Message)
	}
}
