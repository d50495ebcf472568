package http

import (
	"context"
	"net/http"
	"time"

	"kitchen/internal/adapters/in/http/servers"
	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type (
	ActiveOrdersQueryHandler interface {
		Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.GetActiveOrdersQueryResponse, error)
	}
	CreateOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}
	UpdateOrderStatusCommandHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) error
	}
	ToggleOrderStatusCommandHandler interface {
		Handle(ctx context.Context, cmd commands.ToggleOrderStatusCommand) error
	}
	MarkOrderReadyCommandHandler interface {
		Handle(ctx context.Context, cmd commands.MarkOrderReadyCommand) error
	}
	DeleteOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
)

const (
	MessageStatusUpdated = "Order status updated"
	MessageStatusToggled = "Order status toggled"
	MessageMarkedReady   = "Order marked ready"
	MessageDeleted       = "Order deleted"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       CreateOrderCommandHandler
	updateOrderStatusHandler UpdateOrderStatusCommandHandler
	toggleOrderStatusHandler ToggleOrderStatusCommandHandler
	markOrderReadyHandler    MarkOrderReadyCommandHandler
	deleteOrderHandler       DeleteOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler ActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler CreateOrderCommandHandler,
	updateOrderStatusHandler UpdateOrderStatusCommandHandler,
	toggleOrderStatusHandler ToggleOrderStatusCommandHandler,
	markOrderReadyHandler MarkOrderReadyCommandHandler,
	deleteOrderHandler DeleteOrderCommandHandler,
	getActiveOrdersHandler ActiveOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		toggleOrderStatusHandler: toggleOrderStatusHandler,
		markOrderReadyHandler:    markOrderReadyHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListActiveOrders handles GET /api/orders - orders that are not done, newest first.
func (s *Server) ListActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Order, 0, len(orders))
	for _, o := range orders {
		items := make([]servers.OrderItem, 0, len(o.Items))
		for _, item := range o.Items {
			items = append(items, servers.OrderItem{
				Name:                item.Name,
				Quantity:            item.Quantity,
				Modifiers:           item.Modifiers,
				SpecialInstructions: item.SpecialInstructions,
				AllergyAlert:        item.AllergyAlert,
			})
		}

		response = append(response, servers.Order{
			Id:           o.ID,
			OrderNumber:  o.OrderNumber,
			OrderType:    o.OrderType,
			Status:       o.Status,
			CustomerName: o.CustomerName,
			TableNumber:  o.TableNumber,
			CreatedAt:    o.CreatedAt,
			AllergyAlert: o.AllergyAlert,
			Items:        items,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders - places a new pending order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	items := make([]commands.CreateOrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.CreateOrderItem{
			Name:                item.Name,
			Quantity:            item.Quantity,
			Modifiers:           item.Modifiers,
			SpecialInstructions: deref(item.SpecialInstructions),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		body.OrderNumber,
		body.OrderType,
		deref(body.CustomerName),
		deref(body.TableNumber),
		items,
	)
	if err != nil {
		return err
	}

	id, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: id.String()})
}

// UpdateOrderStatus handles PATCH /api/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id string) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(id, body.Status)
	if err != nil {
		return err
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Success: true, Message: MessageStatusUpdated})
}

// PatchOrder handles PATCH /api/orders/{id}, an alias of UpdateOrderStatus.
func (s *Server) PatchOrder(ctx echo.Context, id string) error {
	return s.UpdateOrderStatus(ctx, id)
}

// ToggleOrderStatus handles POST /api/orders/{id}/toggle.
func (s *Server) ToggleOrderStatus(ctx echo.Context, id string) error {
	cmd, err := commands.NewToggleOrderStatusCommand(id)
	if err != nil {
		return err
	}

	if err := s.toggleOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Success: true, Message: MessageStatusToggled})
}

// MarkOrderReady handles POST /api/orders/{id}/ready. The body is optional.
func (s *Server) MarkOrderReady(ctx echo.Context, id string) error {
	var body servers.MarkReady
	if err := ctx.Bind(&body); err != nil {
		return invalidBody()
	}

	after, err := autoRemoveDelay(body.AutoRemoveAfterSeconds)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderReadyCommand(id, after)
	if err != nil {
		return err
	}

	if err := s.markOrderReadyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Success: true, Message: MessageMarkedReady})
}

// DeleteOrder handles DELETE /api/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id string) error {
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return err
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, servers.ActionResult{Success: true, Message: MessageDeleted})
}

// autoRemoveDelay converts the requested seconds to a duration. The bound is
// checked before multiplying so large values cannot wrap around.
func autoRemoveDelay(seconds *int) (time.Duration, error) {
	if seconds == nil {
		return 0, nil
	}

	maxSeconds := int(commands.MaxAutoRemoveAfter / time.Second)
	if *seconds < 0 || *seconds > maxSeconds {
		return 0, errs.NewValueIsOutOfRangeError("autoRemoveAfterSeconds", *seconds, 0, maxSeconds)
	}

	return time.Duration(*seconds) * time.Second, nil
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
