package oerror

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewFormats(t *testing.T) {
	if got := New("cell %v out of range", 3).Error(); got != "cell 3 out of range" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := New("100%").Error(); got != "100%" {
		t.Fatalf("message without args must be kept verbatim, got %q", got)
	}
}

func TestSentinelIdentity(t *testing.T) {
	errA, errB := New("same"), New("same")
	wrapped := fmt.Errorf("cast: %w", errA)
	if !errors.Is(wrapped, errA) {
		t.Fatal("expected wrapped error to match its sentinel")
	}
	if errors.Is(wrapped, errB) {
		t.Fatal("distinct sentinels with the same text must not match")
	}
}
