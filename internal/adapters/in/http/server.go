// Package http exposes the service over a JSON API built on echo. Handlers
// translate between wire types and commands or queries; no business logic
// lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"servis/internal/core/application/usecases/commands"
	"servis/internal/core/application/usecases/queries"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/order"
	"servis/internal/pkg/errs"
)

// dueDateLayout is the wire format for due dates, matching the HTML date input.
const dueDateLayout = "2006-01-02"

// Error is the JSON error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the intake and amendment payload.
type OrderRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	IMEI    string `json:"imei"`
	Problem string `json:"problem"`
	DueDate string `json:"due_date"`
}

// StatusRequest is the transition payload.
type StatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse reports a transition result. Warning is set when the
// status was saved but the customer could not be notified.
type StatusResponse struct {
	Status  string `json:"status"`
	Warning string `json:"warning,omitempty"`
}

// TemplatesPayload carries the template configuration in both directions.
type TemplatesPayload struct {
	Company   string            `json:"company"`
	Templates map[string]string `json:"templates"`
}

// CustomerResponse is the customer part of an order row.
type CustomerResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// DeviceResponse is the device part of an order row.
type DeviceResponse struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	IMEI  string `json:"imei,omitempty"`
}

// OrderResponse is one order row.
type OrderResponse struct {
	ID        string           `json:"id"`
	ShortID   string           `json:"short_id"`
	CreatedAt time.Time        `json:"created_at"`
	Status    string           `json:"status"`
	Problem   string           `json:"problem"`
	DueDate   string           `json:"due_date,omitempty"`
	Customer  CustomerResponse `json:"customer"`
	Device    DeviceResponse   `json:"device"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler   commands.CreateOrderCommandHandler
	editOrderHandler     commands.EditOrderCommandHandler
	deleteOrderHandler   commands.DeleteOrderCommandHandler
	changeStatusHandler  commands.ChangeStatusCommandHandler
	saveTemplatesHandler commands.SaveTemplatesCommandHandler

	getOrdersHandler    queries.GetOrdersQueryHandler
	getReceiptHandler   queries.GetReceiptQueryHandler
	getTemplatesHandler queries.GetTemplatesQueryHandler
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	changeStatusHandler commands.ChangeStatusCommandHandler,
	saveTemplatesHandler commands.SaveTemplatesCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getReceiptHandler queries.GetReceiptQueryHandler,
	getTemplatesHandler queries.GetTemplatesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		editOrderHandler:     editOrderHandler,
		deleteOrderHandler:   deleteOrderHandler,
		changeStatusHandler:  changeStatusHandler,
		saveTemplatesHandler: saveTemplatesHandler,
		getOrdersHandler:     getOrdersHandler,
		getReceiptHandler:    getReceiptHandler,
		getTemplatesHandler:  getTemplatesHandler,
	}
}

// RegisterRoutes binds every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.EditOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/status", s.ChangeStatus)
	api.GET("/orders/:id/receipt", s.GetReceipt)
	api.GET("/templates", s.GetTemplates)
	api.PUT("/templates", s.SaveTemplates)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOrders handles GET /api/v1/orders with an optional search parameter.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery(ctx.QueryParam("search"))

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders, the device intake.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req OrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return badRequest(ctx, "Invalid due date, expected "+dueDateLayout)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.Name, req.Phone, req.Brand, req.Model, req.IMEI, req.Problem, dueDate)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// EditOrder handles PUT /api/v1/orders/:id. Editing never notifies the
// customer.
func (s *Server) EditOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req OrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return badRequest(ctx, "Invalid due date, expected "+dueDateLayout)
	}

	cmd, err := commands.NewEditOrderCommand(
		id, req.Name, req.Phone, req.Brand, req.Model, req.IMEI, req.Problem, dueDate)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.editOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to delete order",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeStatus handles POST /api/v1/orders/:id/status. A persistence
// failure is a 500 and nothing changed; a notification failure still
// returns 200, with a warning, because the transition is saved.
func (s *Server) ChangeStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req StatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeStatusCommand(id, order.StatusFromString(req.Status))
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrNotificationNotSent):
		return ctx.JSON(http.StatusOK, StatusResponse{
			Status:  req.Status,
			Warning: "Status saved, customer was not notified",
		})
	case err != nil:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change order status",
		})
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: req.Status})
}

// GetReceipt handles GET /api/v1/orders/:id/receipt and responds with the
// plain-text receipt.
func (s *Server) GetReceipt(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetReceiptQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	receipt, err := s.getReceiptHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render receipt",
		})
	}

	return ctx.String(http.StatusOK, receipt)
}

// GetTemplates handles GET /api/v1/templates.
func (s *Server) GetTemplates(ctx echo.Context) error {
	resp, err := s.getTemplatesHandler.Handle(ctx.Request().Context(), queries.NewGetTemplatesQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve templates",
		})
	}

	return ctx.JSON(http.StatusOK, TemplatesPayload{
		Company:   resp.Company,
		Templates: resp.Messages,
	})
}

// SaveTemplates handles PUT /api/v1/templates.
func (s *Server) SaveTemplates(ctx echo.Context) error {
	var req TemplatesPayload
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSaveTemplatesCommand(req.Company, req.Templates)
	if err != nil {
		return badRequest(ctx, "Invalid template data: "+err.Error())
	}

	if err = s.saveTemplatesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to save templates",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderResponse(o queries.GetOrdersQueryResponse) OrderResponse {
	resp := OrderResponse{
		ID:        o.ID.String(),
		ShortID:   o.ShortID,
		CreatedAt: o.CreatedAt,
		Status:    o.Status,
		Problem:   o.Problem,
		Customer: CustomerResponse{
			Name:  o.Customer.Name,
			Phone: o.Customer.Phone,
		},
		Device: DeviceResponse{
			Brand: o.Device.Brand,
			Model: o.Device.Model,
			IMEI:  o.Device.IMEI,
		},
	}
	if o.DueDate != nil {
		resp.DueDate = o.DueDate.Format(dueDateLayout)
	}
	return resp
}

func parseDueDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dueDateLayout, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
