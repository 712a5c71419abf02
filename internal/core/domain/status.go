package domain

import "fmt"

// PaymentStatus enumerates the lifecycle states of a payment.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "Pending"
	StatusVerified  PaymentStatus = "Verified"
	StatusRejected  PaymentStatus = "Rejected"
	StatusSubmitted PaymentStatus = "Submitted"
)

// transitions is the complete status flow:
//
//	Pending -> Verified -> Submitted
//	Pending -> Rejected
//
// Rejected and Submitted are terminal.
var transitions = map[PaymentStatus][]PaymentStatus{
	StatusPending:   {StatusVerified, StatusRejected},
	StatusVerified:  {StatusSubmitted},
	StatusRejected:  {},
	StatusSubmitted: {},
}

// ParseStatus converts a raw string into a PaymentStatus.
func ParseStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if _, ok := transitions[status]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// CanTransitionTo reports whether next is reachable from s in one step.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist from s.
func (s PaymentStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// String implements fmt.Stringer.
func (s PaymentStatus) String() string {
	return string(s)
}
