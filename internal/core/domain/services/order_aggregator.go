package services

import (
	"errors"
	"fmt"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
)

// ErrRowIsMalformed is returned when stored data cannot be turned back into an order.
var ErrRowIsMalformed = errors.New("row is malformed")

// JoinedRow is one row of the orders LEFT JOIN order_items read.
// Item columns are nil for an order without items.
type JoinedRow struct {
	OrderID      string
	OrderNumber  string
	OrderType    string
	Status       string
	CustomerName *string
	TableNumber  *string
	CreatedAt    time.Time

	ItemID              *int64
	ItemName            *string
	ItemQuantity        *int
	ItemModifiers       *string
	SpecialInstructions *string
}

func (r JoinedRow) hasItem() bool {
	return r.ItemID != nil || r.ItemName != nil || r.ItemQuantity != nil ||
		r.ItemModifiers != nil || r.SpecialInstructions != nil
}

// OrderAggregator folds join rows into orders.
//
// Orders come out in the order their id was first seen, so the caller's
// ORDER BY decides the display order. Rows of one order need not be adjacent.
//
// Example:
//
//	orders, err := services.NewOrderAggregator().Aggregate(rows)
//	if errors.Is(err, services.ErrRowIsMalformed) {
//	    // stored data is broken
//	}
type OrderAggregator struct{}

func NewOrderAggregator() OrderAggregator {
	return OrderAggregator{}
}

// Aggregate builds one Order per distinct order id with its items in row order.
// An empty input yields an empty, non-nil slice.
func (OrderAggregator) Aggregate(rows []JoinedRow) ([]*order.Order, error) {
	orders := make([]*order.Order, 0)
	byID := make(map[string]*order.Order)

	for i, row := range rows {
		o, seen := byID[row.OrderID]
		if !seen {
			restored, err := restoreOrder(row)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
			o = restored
			byID[row.OrderID] = o
			orders = append(orders, o)
		}

		if !row.hasItem() {
			continue
		}

		item, err := restoreItem(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if err = o.AddItem(item); err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", i, ErrRowIsMalformed, err)
		}
	}

	return orders, nil
}

func restoreOrder(row JoinedRow) (*order.Order, error) {
	id, err := kernel.ParseID(row.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: order id: %v", ErrRowIsMalformed, err)
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s: %v", ErrRowIsMalformed, row.OrderID, err)
	}

	o, err := order.RestoreOrder(id, order.Details{
		Number:       row.OrderNumber,
		Type:         order.Type(row.OrderType),
		CustomerName: deref(row.CustomerName),
		TableNumber:  deref(row.TableNumber),
		CreatedAt:    row.CreatedAt,
	}, status, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: order %s: %v", ErrRowIsMalformed, row.OrderID, err)
	}
	return o, nil
}

func restoreItem(row JoinedRow) (order.Item, error) {
	if row.ItemName == nil || row.ItemQuantity == nil {
		return order.Item{}, fmt.Errorf("%w: item of order %s lacks name or quantity", ErrRowIsMalformed, row.OrderID)
	}

	modifiers, err := DecodeModifiers(row.ItemModifiers)
	if err != nil {
		return order.Item{}, err
	}

	item, err := order.NewItem(*row.ItemName, *row.ItemQuantity, modifiers, deref(row.SpecialInstructions))
	if err != nil {
		return order.Item{}, fmt.Errorf("%w: item of order %s: %v", ErrRowIsMalformed, row.OrderID, err)
	}
	return item, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
