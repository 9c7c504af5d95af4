package appointment

import "errors"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

var ErrInvalidTransition = errors.New("invalid_status_transition")

// InitialStatus is what every customer booking starts as.
func InitialStatus() Status {
	return StatusPending
}

func Known(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// ===============================
// Transitions
// ===============================

// CanTransition reports whether the UI may move an appointment from
// one status to another. Only the owning shop's decision on a pending
// booking is allowed; completed is set by the backend, never here.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}

// Decide validates a shop owner's approve/reject choice against the
// current status.
func Decide(current, next Status) error {
	if !CanTransition(current, next) {
		return ErrInvalidTransition
	}
	return nil
}

// Terminal reports whether no further UI transition exists.
func Terminal(s Status) bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCompleted
}
