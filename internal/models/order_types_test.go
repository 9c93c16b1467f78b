package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusVerifying, StatusProcessing, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "shipped", "PENDING", "cancelled"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{StatusPending, StatusVerifying, true},
		{StatusVerifying, StatusProcessing, true},
		{StatusProcessing, StatusCompleted, true},

		// Same status is a no-op.
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, true},

		// Backward moves are rejected.
		{StatusVerifying, StatusPending, false},
		{StatusCompleted, StatusProcessing, false},
		{StatusCompleted, StatusPending, false},

		// Skipping steps is rejected.
		{StatusPending, StatusProcessing, false},
		{StatusPending, StatusCompleted, false},
		{StatusVerifying, StatusCompleted, false},

		// Unknown statuses never transition.
		{"shipped", StatusCompleted, false},
		{StatusPending, "cancelled", false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
