package http

import (
	"errors"
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/generated/servers"
	"ordermanagement/internal/pkg/errs"

	"github.com/govalues/decimal"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	addItemHandler      commands.AddItemCommandHandler
	removeItemHandler   commands.RemoveItemCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	shipOrderHandler    commands.ShipOrderCommandHandler
	deliverOrderHandler commands.DeliverOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderByIDHandler  queries.GetOrderByIDQueryHandler
	getOrderItemsHandler queries.GetOrderItemsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	shipOrderHandler commands.ShipOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrderItemsHandler queries.GetOrderItemsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		addItemHandler:       addItemHandler,
		removeItemHandler:    removeItemHandler,
		confirmOrderHandler:  confirmOrderHandler,
		shipOrderHandler:     shipOrderHandler,
		deliverOrderHandler:  deliverOrderHandler,
		cancelOrderHandler:   cancelOrderHandler,
		getOrdersHandler:     getOrdersHandler,
		getOrderByIDHandler:  getOrderByIDHandler,
		getOrderItemsHandler: getOrderItemsHandler,
	}
}

// GetOrders handles GET /api/v1/orders - lists the tenant's orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	tenantID, err := tenantIDFromHeader(params.XTenantId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var customerID *kernel.CustomerID
	if params.CustomerId != nil {
		id, idErr := customerIDFromWire(*params.CustomerId)
		if idErr != nil {
			return errorResponse(ctx, idErr)
		}
		customerID = &id
	}

	var status *order.Status
	if params.Status != nil {
		parsed, statusErr := order.StatusFromString(*params.Status)
		if statusErr != nil {
			return errorResponse(ctx, statusErr)
		}
		status = &parsed
	}

	page, pageSize := 0, 0
	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	query, err := queries.NewGetOrdersQuery(tenantID, customerID, status, page, pageSize)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders := make([]servers.Order, len(result.Orders))
	for i, summary := range result.Orders {
		orders[i] = servers.Order{
			Id:          summary.ID.UUID().Bytes(),
			CustomerId:  summary.CustomerID.UUID().Bytes(),
			Status:      summary.Status.String(),
			Currency:    summary.Currency,
			TotalAmount: summary.TotalAmount.String(),
			OrderDate:   summary.OrderDate,
			ItemCount:   summary.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, servers.OrderList{
		Orders:   orders,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

// CreateOrder handles POST /api/v1/orders - opens a new draft order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	tenantID, err := tenantIDFromHeader(params.XTenantId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	customerID, err := customerIDFromWire(body.CustomerId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	// Clients may supply the order identifier to make retries idempotent
	// on their side; otherwise one is generated here.
	orderID := kernel.NewOrderID()
	if body.OrderId != nil {
		orderID, err = orderIDFromWire(*body.OrderId)
		if err != nil {
			return errorResponse(ctx, err)
		}
	}

	var items []commands.OrderItemInput
	if body.Items != nil {
		items = make([]commands.OrderItemInput, 0, len(*body.Items))
		for _, line := range *body.Items {
			item, itemErr := itemInputFromWire(line)
			if itemErr != nil {
				return errorResponse(ctx, itemErr)
			}
			items = append(items, item)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, tenantID, customerID, body.Currency, items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	ctx.Response().Header().Set(echo.HeaderLocation, "/api/v1/orders/"+orderID.String())
	return ctx.NoContent(http.StatusCreated)
}

// GetOrderById handles GET /api/v1/orders/{orderId} - full order details.
func (s *Server) GetOrderById(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderByIdParams) error {
	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(tenantID, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := servers.OrderDetails{
		Id:                 details.ID.UUID().Bytes(),
		CustomerId:         details.CustomerID.UUID().Bytes(),
		CustomerName:       optionalString(details.CustomerName),
		CustomerEmail:      optionalString(details.CustomerEmail),
		Status:             details.Status.String(),
		Currency:           details.Currency,
		TotalAmount:        details.TotalAmount.String(),
		OrderDate:          details.OrderDate,
		ConfirmedAt:        details.ConfirmedAt,
		ShippedAt:          details.ShippedAt,
		DeliveredAt:        details.DeliveredAt,
		CancelledAt:        details.CancelledAt,
		CancellationReason: optionalString(details.CancellationReason),
		Version:            details.Version,
		Items:              itemsToWire(details.Items),
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId, params servers.CancelOrderParams) error {
	var body servers.CancelOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(tenantID, orderID, body.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId servers.OrderId, params servers.ConfirmOrderParams) error {
	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(tenantID, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ShipOrder handles POST /api/v1/orders/{orderId}/ship.
func (s *Server) ShipOrder(ctx echo.Context, orderId servers.OrderId, params servers.ShipOrderParams) error {
	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewShipOrderCommand(tenantID, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.shipOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderId servers.OrderId, params servers.DeliverOrderParams) error {
	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(tenantID, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderItems handles GET /api/v1/orders/{orderId}/items.
func (s *Server) GetOrderItems(ctx echo.Context, orderId servers.OrderId, params servers.GetOrderItemsParams) error {
	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderItemsQuery(tenantID, orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderItemList{
		OrderId:     result.OrderID.UUID().Bytes(),
		Currency:    result.Currency,
		TotalAmount: result.TotalAmount.String(),
		Items:       itemsToWire(result.Items),
	})
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderId servers.OrderId, params servers.AddOrderItemParams) error {
	var body servers.AddOrderItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	item, err := itemInputFromWire(body)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddItemCommand(
		tenantID,
		orderID,
		item.ProductID,
		item.ProductName,
		item.Quantity,
		item.UnitPrice,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.addItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{productId}.
func (s *Server) RemoveOrderItem(
	ctx echo.Context,
	orderId servers.OrderId,
	productId servers.ProductId,
	params servers.RemoveOrderItemParams,
) error {
	tenantID, orderID, err := actorIDs(params.XTenantId, orderId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID, err := productIDFromWire(productId)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRemoveItemCommand(tenantID, orderID, productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.removeItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// errorResponse maps an application error onto an HTTP status and writes the
// error body. Validation and workflow violations are client errors, missing
// aggregates map to 404 and optimistic lock failures to 409.
func errorResponse(ctx echo.Context, err error) error {
	status := statusCodeFor(err)
	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: err.Error(),
	})
}

func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return http.StatusConflict
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, order.ErrOrderNotEditable),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, kernel.ErrCurrencyMismatch),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func tenantIDFromHeader(id servers.TenantId) (kernel.TenantID, error) {
	raw, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.TenantID{}, err
	}
	return kernel.TenantIDFromUUID(raw)
}

func orderIDFromWire(id openapi_types.UUID) (kernel.OrderID, error) {
	raw, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.OrderID{}, err
	}
	return kernel.OrderIDFromUUID(raw)
}

func customerIDFromWire(id openapi_types.UUID) (kernel.CustomerID, error) {
	raw, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.CustomerID{}, err
	}
	return kernel.CustomerIDFromUUID(raw)
}

func productIDFromWire(id openapi_types.UUID) (kernel.ProductID, error) {
	raw, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.ProductID{}, err
	}
	return kernel.ProductIDFromUUID(raw)
}

// actorIDs converts the two identifiers every order-scoped endpoint carries.
func actorIDs(tenantId servers.TenantId, orderId servers.OrderId) (kernel.TenantID, kernel.OrderID, error) {
	tenantID, err := tenantIDFromHeader(tenantId)
	if err != nil {
		return kernel.TenantID{}, kernel.OrderID{}, err
	}

	orderID, err := orderIDFromWire(orderId)
	if err != nil {
		return kernel.TenantID{}, kernel.OrderID{}, err
	}

	return tenantID, orderID, nil
}

func itemInputFromWire(line servers.NewOrderItem) (commands.OrderItemInput, error) {
	productID, err := productIDFromWire(line.ProductId)
	if err != nil {
		return commands.OrderItemInput{}, err
	}

	amount, err := decimal.Parse(line.UnitPrice)
	if err != nil {
		return commands.OrderItemInput{}, errs.NewValueIsInvalidErrorWithCause("unitPrice", err)
	}

	unitPrice, err := kernel.NewMoney(amount, line.Currency)
	if err != nil {
		return commands.OrderItemInput{}, err
	}

	return commands.OrderItemInput{
		ProductID:   productID,
		ProductName: line.ProductName,
		Quantity:    line.Quantity,
		UnitPrice:   unitPrice,
	}, nil
}

func itemsToWire(items []queries.OrderItemDetails) []servers.OrderItem {
	wire := make([]servers.OrderItem, len(items))
	for i, item := range items {
		wire[i] = servers.OrderItem{
			Id:          item.ID.UUID().Bytes(),
			ProductId:   item.ProductID.UUID().Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			TotalPrice:  item.TotalPrice.String(),
		}
	}
	return wire
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
