package domain

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Verified", "Rejected", "Submitted"} {
		status, err := ParseStatus(s)
		if err != nil {
			t.Fatalf("ParseStatus(%q): %v", s, err)
		}
		if status.String() != s {
			t.Fatalf("ParseStatus(%q) = %q", s, status)
		}
	}

	for _, s := range []string{"", "pending", "Approved", "Cancelled"} {
		if _, err := ParseStatus(s); !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("ParseStatus(%q): expected ErrUnknownStatus, got %v", s, err)
		}
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{StatusPending, StatusVerified, true},
		{StatusPending, StatusRejected, true},
		{StatusVerified, StatusSubmitted, true},

		{StatusPending, StatusSubmitted, false},
		{StatusPending, StatusPending, false},
		{StatusVerified, StatusPending, false},
		{StatusVerified, StatusRejected, false},
		{StatusRejected, StatusPending, false},
		{StatusRejected, StatusVerified, false},
		{StatusRejected, StatusSubmitted, false},
		{StatusSubmitted, StatusPending, false},
		{StatusSubmitted, StatusVerified, false},
		{StatusSubmitted, StatusRejected, false},
	}

	for _, tc := range tests {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestTerminalStates(t *testing.T) {
	if StatusPending.IsTerminal() || StatusVerified.IsTerminal() {
		t.Fatal("Pending and Verified must not be terminal")
	}
	if !StatusRejected.IsTerminal() || !StatusSubmitted.IsTerminal() {
		t.Fatal("Rejected and Submitted must be terminal")
	}
}
