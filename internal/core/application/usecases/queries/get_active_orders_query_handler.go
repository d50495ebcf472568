package queries

import (
	"context"

	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
	"kitchen/internal/pkg/errs"
)

// GetActiveOrdersQueryHandler reads the order/item join and folds it into orders.
// Every call reads the store again; nothing is cached.
type GetActiveOrdersQueryHandler struct {
	reader     ports.ActiveOrderRowReader
	aggregator services.OrderAggregator
}

func NewGetActiveOrdersQueryHandler(reader ports.ActiveOrderRowReader) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		reader:     reader,
		aggregator: services.NewOrderAggregator(),
	}
}

// Handle returns the active orders in display order. An empty store yields an
// empty, non-nil slice.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reader.ListActiveRows(ctx)
	if err != nil {
		return nil, errs.Classify("list active orders", err)
	}

	orders, err := h.aggregator.Aggregate(rows)
	if err != nil {
		return nil, errs.NewStorageUnavailableError("list active orders", err)
	}

	response := make([]GetActiveOrdersQueryResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toResponse(o))
	}

	return response, nil
}

func toResponse(o *order.Order) GetActiveOrdersQueryResponse {
	items := o.Items()
	itemResponses := make([]GetActiveOrdersItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, GetActiveOrdersItemResponse{
			Name:                item.Name(),
			Quantity:            item.Quantity(),
			Modifiers:           item.Modifiers(),
			SpecialInstructions: optional(item.SpecialInstructions()),
			AllergyAlert:        item.HasAllergyWarning(),
		})
	}

	return GetActiveOrdersQueryResponse{
		ID:           o.ID().String(),
		OrderNumber:  o.Number(),
		OrderType:    o.Type().String(),
		Status:       o.Status().String(),
		CustomerName: optional(o.CustomerName()),
		TableNumber:  optional(o.TableNumber()),
		CreatedAt:    o.CreatedAt(),
		AllergyAlert: o.HasAllergyWarning(),
		Items:        itemResponses,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
