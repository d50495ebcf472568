package postgres

import (
	"context"
	"fmt"
	"time"

	"kitchen/internal/adapters/out/postgres/orderrepo"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type demoItem struct {
	name         string
	quantity     int
	modifiers    []string
	instructions string
}

type demoOrder struct {
	id      string
	details order.Details
	status  order.Status
	age     time.Duration
	items   []demoItem
}

func demoOrders() []demoOrder {
	return []demoOrder{
		{
			id:      "1",
			details: order.Details{Number: "101", Type: order.DineIn, TableNumber: "5"},
			status:  order.Pending,
			age:     2 * time.Minute,
			items: []demoItem{
				{"Classic Burger", 2, []string{"No Onions", "Extra Pickles"}, "Well done please"},
				{"French Fries", 1, []string{"Extra Salt"}, ""},
				{"Caesar Salad", 1, nil, ""},
			},
		},
		{
			id:      "2",
			details: order.Details{Number: "102", Type: order.Takeout, CustomerName: "Sarah Chen"},
			status:  order.Preparing,
			age:     8 * time.Minute,
			items: []demoItem{
				{"Margherita Pizza", 1, []string{"Extra Cheese", "Thin Crust"}, "ALLERGY: Gluten free crust required"},
				{"Chicken Wings", 12, []string{"Buffalo Sauce", "Ranch on side"}, ""},
			},
		},
		{
			id:      "3",
			details: order.Details{Number: "103", Type: order.Delivery, CustomerName: "Mike Johnson"},
			status:  order.Ready,
			age:     15 * time.Minute,
			items: []demoItem{
				{"Ribeye Steak", 1, []string{"Medium Rare", "No Butter"}, "Birthday dinner - please make it special!"},
				{"Loaded Baked Potato", 1, nil, ""},
				{"Asparagus", 1, []string{"Extra Crispy"}, ""},
				{"Chocolate Cake", 1, nil, "Add birthday candle"},
			},
		},
		{
			id:      "4",
			details: order.Details{Number: "104", Type: order.DineIn, TableNumber: "12"},
			status:  order.Pending,
			age:     30 * time.Second,
			items: []demoItem{
				{"Fish Tacos", 3, []string{"Grilled", "Extra Lime"}, ""},
				{"Chips & Guacamole", 1, nil, ""},
				{"Margarita", 2, []string{"No Salt", "Extra Ice"}, ""},
			},
		},
		{
			id:      "5",
			details: order.Details{Number: "105", Type: order.Takeout, CustomerName: "Emily Davis"},
			status:  order.Preparing,
			age:     5 * time.Minute,
			items: []demoItem{
				{"Pad Thai", 2, []string{"Mild Spice", "No Peanuts"}, "SEVERE PEANUT ALLERGY - Please ensure no cross contamination"},
				{"Spring Rolls", 4, nil, ""},
				{"Thai Iced Tea", 2, nil, ""},
			},
		},
	}
}

type discardTracker struct{}

func (discardTracker) TrackAggregate(kernel.ID, any) {}

// SeedDemoOrders fills an empty store with sample tickets aged relative to now.
// It returns the number of inserted orders and does nothing when orders exist.
func SeedDemoOrders(ctx context.Context, db *gorm.DB, now time.Time) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&orderrepo.OrderDTO{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	demos := demoOrders()
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := orderrepo.NewGormOrderRepository(tx, discardTracker{})
		for _, demo := range demos {
			aggregate, err := buildDemoOrder(demo, now)
			if err != nil {
				return err
			}
			if err = repo.Add(ctx, aggregate); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed demo orders: %w", err)
	}

	return len(demos), nil
}

func buildDemoOrder(demo demoOrder, now time.Time) (*order.Order, error) {
	items := make([]order.Item, 0, len(demo.items))
	for _, d := range demo.items {
		item, err := order.NewItem(d.name, d.quantity, d.modifiers, d.instructions)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	details := demo.details
	details.CreatedAt = now.Add(-demo.age).UTC()
	return order.RestoreOrder(kernel.MustParseID(demo.id), details, demo.status, items)
}
