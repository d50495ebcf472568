package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Type is the service channel of an order. It is stored and transmitted as its literal.
type Type string

const (
	DineIn   Type = "dine-in"
	Takeout  Type = "takeout"
	Delivery Type = "delivery"
)

// ParseType converts a literal into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that the type is one of DineIn, Takeout or Delivery.
func (t Type) Validate() error {
	switch t {
	case DineIn, Takeout, Delivery:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid", fmt.Errorf("%q is not a known order type", string(t)))
	}
}

func (t Type) String() string {
	return string(t)
}
