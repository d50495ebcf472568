package order

import (
	"errors"
	"fmt"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

// AllergyKeyword marks special instructions that must be highlighted on the display.
// The match is case-insensitive and may occur anywhere in the text.
const AllergyKeyword = "allergy"

// ErrItemIsNotConstructed is returned when a zero Item is used.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("Item must be created via NewItem")

// Item is one line of a kitchen ticket. It is a value object owned by its Order.
//
// Item follows these invariants:
//   - Name is not blank
//   - Quantity is greater than 0
//   - Modifiers keep their order and are never nil
//   - Special instructions are kept verbatim, an empty string means none
type Item struct {
	name                string
	quantity            int
	modifiers           []string
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewItem validates and creates a ticket line.
//
// Example:
//
//	item, err := order.NewItem("Margherita Pizza", 1, []string{"Extra cheese"}, "ALLERGY: Gluten free crust required")
//	if err != nil {
//	    return err
//	}
//	item.HasAllergyWarning() // true
func NewItem(name string, quantity int, modifiers []string, specialInstructions string) (Item, error) {
	var err error
	if strings.TrimSpace(name) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("item name"))
	}
	if quantity <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity),
		))
	}
	if err != nil {
		return Item{}, err
	}

	copied := make([]string, len(modifiers))
	copy(copied, modifiers)

	return Item{
		name:                name,
		quantity:            quantity,
		modifiers:           copied,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

// Modifiers returns a copy of the modifiers in ticket order.
func (i Item) Modifiers() []string {
	modifiers := make([]string, len(i.modifiers))
	copy(modifiers, i.modifiers)
	return modifiers
}

func (i Item) SpecialInstructions() string {
	return i.specialInstructions
}

// HasAllergyWarning reports whether the special instructions mention an allergy.
func (i Item) HasAllergyWarning() bool {
	return strings.Contains(strings.ToLower(i.specialInstructions), AllergyKeyword)
}
