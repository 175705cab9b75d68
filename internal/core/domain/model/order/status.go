package order

import (
	"strings"

	"servis/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
//
// The set of statuses is open-ended: the store accepts any non-empty value,
// and any status is reachable from any other. Only the known statuses have
// notification templates bound to them:
//
//	Received ──┬──> Completed
//	           └──> Failed
//
// The wire and storage representation is the lower-case Serbian word used by
// the shop ("primljen", "zavrsen", "neuspeh"), which is also the key into the
// template set.
type Status string

const (
	// Received is the initial status assigned on intake.
	Received Status = "primljen"

	// Completed indicates the repair succeeded and the device is ready for pickup.
	Completed Status = "zavrsen"

	// Failed indicates the repair could not be done.
	Failed Status = "neuspeh"
)

// StatusFromString normalizes raw input into a Status.
// Leading and trailing whitespace is dropped and the value is lower-cased
// so that template lookups stay case-stable.
func StatusFromString(s string) Status {
	return Status(strings.ToLower(strings.TrimSpace(s)))
}

// Validate checks that the status carries a value.
// Any non-empty status is acceptable; the set is deliberately open.
func (s Status) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("status")
	}
	return nil
}

// IsKnown reports whether the status is one of the values the application
// was designed around. Unknown statuses are still stored and displayed, they
// just have no built-in notification template.
func (s Status) IsKnown() bool {
	switch s {
	case Received, Completed, Failed:
		return true
	}
	return false
}

// String returns the storage representation of the status.
func (s Status) String() string {
	return string(s)
}
