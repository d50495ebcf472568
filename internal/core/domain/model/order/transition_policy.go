package order

import (
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// PolicyMode selects how strictly requested statuses must follow the state machine.
type PolicyMode int

const (
	// Lenient accepts any allowed status from a non-terminal state except
	// moving backwards out of Ready. It is the default.
	Lenient PolicyMode = iota

	// Strict only accepts the single next status.
	Strict
)

// ParsePolicyMode reads the configured mode; an empty string means Lenient.
func ParsePolicyMode(s string) (PolicyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, errs.NewValueIsInvalidErrorWithCause(
			"status policy", fmt.Errorf("%q is neither lenient nor strict", s),
		)
	}
}

func (m PolicyMode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// PolicyOption configures a TransitionPolicy.
type PolicyOption func(*TransitionPolicy)

// WithMode sets the adjacency mode.
func WithMode(mode PolicyMode) PolicyOption {
	return func(p *TransitionPolicy) {
		p.mode = mode
	}
}

// WithDirectCompletion enables the Done status, reachable from Pending,
// Preparing and Ready without passing through the other states.
func WithDirectCompletion() PolicyOption {
	return func(p *TransitionPolicy) {
		p.allowDirectCompletion = true
	}
}

// TransitionPolicy decides which status changes are legal.
// It is a value object without side effects and safe for concurrent use.
//
// Example:
//
//	policy := order.NewTransitionPolicy(order.WithMode(order.Strict))
//	next, err := policy.Validate(order.Pending, "preparing")
//	if err != nil {
//	    // errors.Is(err, errs.ErrTransitionIsInvalid)
//	}
type TransitionPolicy struct {
	mode                  PolicyMode
	allowDirectCompletion bool

	guard guard.ConstructorGuard
}

// ErrTransitionPolicyIsNotConstructed is returned when a zero TransitionPolicy is used.
var ErrTransitionPolicyIsNotConstructed = errs.NewValueIsRequiredError(
	"TransitionPolicy must be created via NewTransitionPolicy",
)

// NewTransitionPolicy builds a policy; without options it is lenient and has no Done status.
func NewTransitionPolicy(opts ...PolicyOption) TransitionPolicy {
	p := TransitionPolicy{guard: guard.NewConstructorGuard()}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Validate ensures the policy was created through NewTransitionPolicy.
func (p TransitionPolicy) Validate() error {
	return p.guard.Validate(ErrTransitionPolicyIsNotConstructed)
}

// Mode returns the configured adjacency mode.
func (p TransitionPolicy) Mode() PolicyMode {
	return p.mode
}

// AllowsDirectCompletion reports whether Done is part of the state machine.
func (p TransitionPolicy) AllowsDirectCompletion() bool {
	return p.allowDirectCompletion
}

// Allowed returns the statuses a client may request, in lifecycle order.
func (p TransitionPolicy) Allowed() []Status {
	allowed := []Status{Pending, Preparing, Ready}
	if p.allowDirectCompletion {
		allowed = append(allowed, Done)
	}
	return allowed
}

// IsTerminal reports whether no transition leaves s.
func (p TransitionPolicy) IsTerminal(s Status) bool {
	if s == Done {
		return true
	}
	return s == Ready && !p.allowDirectCompletion
}

// Next returns the single forward status after current.
// The boolean is false when current is terminal or invalid.
func (p TransitionPolicy) Next(current Status) (Status, bool) {
	switch current {
	case Pending:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		if p.allowDirectCompletion {
			return Done, true
		}
		return Unknown, false
	default:
		return Unknown, false
	}
}

// ValidateTransition checks a requested status literal against the current status and
// returns the parsed target. Requesting the current status is accepted as a no-op.
//
// It fails with a TransitionIsInvalidError when:
//   - the literal is not one of Allowed()
//   - current is terminal
//   - the move goes backwards, other than Preparing -> Pending
//   - the policy is Strict and the target is not Next(current) or Done
func (p TransitionPolicy) ValidateTransition(current Status, requested string) (Status, error) {
	target, err := ParseStatus(requested)
	if err != nil {
		return Unknown, errs.NewTransitionIsInvalidErrorWithCause(current.String(), requested, err)
	}
	if !p.isAllowed(target) {
		return Unknown, errs.NewTransitionIsInvalidErrorWithCause(
			current.String(), requested, fmt.Errorf("%s is not enabled", target),
		)
	}
	if err = current.Validate(); err != nil {
		return Unknown, errs.NewTransitionIsInvalidErrorWithCause(current.String(), requested, err)
	}

	if target == current {
		return target, nil
	}

	if p.IsTerminal(current) {
		return Unknown, errs.NewTransitionIsInvalidErrorWithCause(
			current.String(), requested, fmt.Errorf("%s is a terminal status", current),
		)
	}

	if target == Done {
		return target, nil
	}

	if target < current && !(current == Preparing && target == Pending) {
		return Unknown, errs.NewTransitionIsInvalidErrorWithCause(
			current.String(), requested, fmt.Errorf("cannot move back from %s", current),
		)
	}

	if p.mode == Strict {
		if next, ok := p.Next(current); !ok || next != target {
			return Unknown, errs.NewTransitionIsInvalidErrorWithCause(
				current.String(), requested, fmt.Errorf("only %s may follow %s", next, current),
			)
		}
	}

	return target, nil
}

// Toggle swaps Pending and Preparing; any other status is an invalid transition.
func (p TransitionPolicy) Toggle(current Status) (Status, error) {
	switch current {
	case Pending:
		return Preparing, nil
	case Preparing:
		return Pending, nil
	default:
		return Unknown, errs.NewTransitionIsInvalidErrorWithCause(
			current.String(), "toggle", fmt.Errorf("%s cannot be toggled", current),
		)
	}
}

func (p TransitionPolicy) isAllowed(s Status) bool {
	for _, allowed := range p.Allowed() {
		if allowed == s {
			return true
		}
	}
	return false
}
