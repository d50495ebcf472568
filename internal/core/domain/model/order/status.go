package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order on the kitchen display.
//
// State transitions (default policy):
//
//	Pending <──> Preparing ──> Ready
//	   │                         ▲
//	   └─────────────────────────┘
//	      (mark ready shortcut)
//
// Done is only reachable when the direct completion extension is enabled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the status of a freshly placed order nobody has started.
	Pending

	// Preparing means the kitchen is working on the order.
	Preparing

	// Ready means the order can be handed out. Terminal unless orders are
	// completed through Done.
	Ready

	// Done marks an order completed and removed from the display.
	Done
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Done:      "done",
	}
}

func getValidStatuses() map[string]Status {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[string]Status{
		"pending":   Pending,
		"preparing": Preparing,
		"ready":     Ready,
		"done":      Done,
	}
}

// ParseStatus converts a wire or storage literal into a Status.
// Literals are case-sensitive, as stored.
func ParseStatus(s string) (Status, error) {
	status, ok := getValidStatuses()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid status", s),
		)
	}
	return status, nil
}

// Validate checks that the status is one of the defined values.
func (s Status) Validate() error {
	if s < Pending || s > Done {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire literal of the status, "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
