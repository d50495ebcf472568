// Package queries contains the read side of the kitchen display.
package queries

import (
	"errors"
	"time"

	"kitchen/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists every order that is not done, newest first.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(rowReader)
//	orders, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s allergy=%t\n", o.OrderNumber, o.Status, o.AllergyAlert)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one order as shown on the display.
// Optional fields are nil when the order has no value for them.
type GetActiveOrdersQueryResponse struct {
	ID           string
	OrderNumber  string
	OrderType    string
	Status       string
	CustomerName *string
	TableNumber  *string
	CreatedAt    time.Time
	AllergyAlert bool
	Items        []GetActiveOrdersItemResponse
}

// GetActiveOrdersItemResponse is one ticket line. Modifiers is never nil.
type GetActiveOrdersItemResponse struct {
	Name                string
	Quantity            int
	Modifiers           []string
	SpecialInstructions *string
	AllergyAlert        bool
}
