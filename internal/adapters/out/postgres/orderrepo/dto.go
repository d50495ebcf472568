// Package orderrepo maps the Order aggregate onto the orders and order_items
// tables and reads the active order join for the display.
package orderrepo

import (
	"time"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
)

// OrderDTO is a row of the orders table.
type OrderDTO struct {
	ID           string         `gorm:"type:text;primaryKey"`
	OrderNumber  string         `gorm:"type:text;not null"`
	OrderType    string         `gorm:"type:text;not null"`
	Status       string         `gorm:"type:text;not null;index"`
	CustomerName *string        `gorm:"type:text"`
	TableNumber  *string        `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"type:timestamptz;not null;index"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a row of the order_items table. Modifiers hold a JSON array.
type OrderItemDTO struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement"`
	OrderID             string  `gorm:"type:text;not null;index"`
	Name                string  `gorm:"type:text;not null"`
	Quantity            int     `gorm:"not null"`
	Modifiers           *string `gorm:"type:text"`
	SpecialInstructions *string `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		modifiers := services.EncodeModifiers(item.Modifiers())
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:             aggregate.ID().String(),
			Name:                item.Name(),
			Quantity:            item.Quantity(),
			Modifiers:           &modifiers,
			SpecialInstructions: nullable(item.SpecialInstructions()),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().String(),
		OrderNumber:  aggregate.Number(),
		OrderType:    aggregate.Type().String(),
		Status:       aggregate.Status().String(),
		CustomerName: nullable(aggregate.CustomerName()),
		TableNumber:  nullable(aggregate.TableNumber()),
		CreatedAt:    aggregate.CreatedAt(),
		Items:        itemDTOs,
	}
}

// toDomain rebuilds an order through the aggregator so that rows read by Get
// and by the display join are decoded the same way.
func toDomain(dto OrderDTO) (*order.Order, error) {
	rows := make([]services.JoinedRow, 0, len(dto.Items)+1)
	base := services.JoinedRow{
		OrderID:      dto.ID,
		OrderNumber:  dto.OrderNumber,
		OrderType:    dto.OrderType,
		Status:       dto.Status,
		CustomerName: dto.CustomerName,
		TableNumber:  dto.TableNumber,
		CreatedAt:    dto.CreatedAt,
	}
	if len(dto.Items) == 0 {
		rows = append(rows, base)
	}
	for _, item := range dto.Items {
		row := base
		row.ItemID = &item.ID
		row.ItemName = &item.Name
		row.ItemQuantity = &item.Quantity
		row.ItemModifiers = item.Modifiers
		row.SpecialInstructions = item.SpecialInstructions
		rows = append(rows, row)
	}

	orders, err := services.NewOrderAggregator().Aggregate(rows)
	if err != nil {
		return nil, err
	}
	return orders[0], nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
