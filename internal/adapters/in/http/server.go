// Package http exposes the dashboard and admin API on echo.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shipsync/internal/core/application/settings"
	"shipsync/internal/core/application/usecases/commands"
	"shipsync/internal/core/application/usecases/queries"
	"shipsync/internal/pkg/errs"
)

// Server wires the HTTP routes to the application use cases.
type Server struct {
	ingestHandler          commands.IngestOrdersCommandHandler
	approveHandler         commands.ApproveOrderCommandHandler
	processHandler         commands.ProcessOrderCommandHandler
	sweepHandler           commands.ProcessReadyOrdersCommandHandler
	deleteHandler          commands.DeleteOrderCommandHandler
	refreshTagsHandler     commands.RefreshTagsCommandHandler
	refreshProductsHandler commands.RefreshProductsCommandHandler

	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getOrderHandler            queries.GetOrderQueryHandler
	getPendingApprovalsHandler queries.GetPendingApprovalsQueryHandler
	getArchivedOrdersHandler   queries.GetArchivedOrdersQueryHandler
	getAllTagsHandler          queries.GetAllTagsQueryHandler

	settings *settings.Settings
	logger   *slog.Logger
}

// NewServer creates the HTTP server with its command and query handlers.
func NewServer(
	ingestHandler commands.IngestOrdersCommandHandler,
	approveHandler commands.ApproveOrderCommandHandler,
	processHandler commands.ProcessOrderCommandHandler,
	sweepHandler commands.ProcessReadyOrdersCommandHandler,
	deleteHandler commands.DeleteOrderCommandHandler,
	refreshTagsHandler commands.RefreshTagsCommandHandler,
	refreshProductsHandler commands.RefreshProductsCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPendingApprovalsHandler queries.GetPendingApprovalsQueryHandler,
	getArchivedOrdersHandler queries.GetArchivedOrdersQueryHandler,
	getAllTagsHandler queries.GetAllTagsQueryHandler,
	appSettings *settings.Settings,
	logger *slog.Logger,
) *Server {
	return &Server{
		ingestHandler:              ingestHandler,
		approveHandler:             approveHandler,
		processHandler:             processHandler,
		sweepHandler:               sweepHandler,
		deleteHandler:              deleteHandler,
		refreshTagsHandler:         refreshTagsHandler,
		refreshProductsHandler:     refreshProductsHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getOrderHandler:            getOrderHandler,
		getPendingApprovalsHandler: getPendingApprovalsHandler,
		getArchivedOrdersHandler:   getArchivedOrdersHandler,
		getAllTagsHandler:          getAllTagsHandler,
		settings:                   appSettings,
		logger:                     logger.With("component", "http-server"),
	}
}

// RegisterRoutes binds every route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/orders", s.GetAllOrders)
	api.POST("/orders/fetch-now", s.FetchNow)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/approve", s.ApproveOrder)
	api.POST("/orders/:orderId/process", s.ProcessOrder)
	api.DELETE("/orders/:orderId", s.DeleteOrder)

	api.GET("/approvals", s.GetPendingApprovals)
	api.GET("/archive", s.GetArchivedOrders)

	api.GET("/settings/autolabel", s.GetAutoProcessing)
	api.POST("/settings/autolabel", s.SetAutoProcessing)

	api.GET("/admin/tags", s.GetAllTags)
	api.POST("/admin/tags/refresh", s.RefreshTags)
	api.POST("/admin/products/refresh", s.RefreshProducts)
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the JSON body of operations that only report an
// outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AutoProcessingResponse reports the auto-processing toggle state.
type AutoProcessingResponse struct {
	IsEnabled bool `json:"isEnabled"`
}

type autoProcessingRequest struct {
	IsEnabled bool `json:"isEnabled"`
}

type processOrderRequest struct {
	Multipack bool `json:"multipack"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Server is healthy")
}

// GetAllOrders handles GET /api/orders - the dashboard listing.
func (s *Server) GetAllOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:orderId - full order detail.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// FetchNow handles POST /api/orders/fetch-now - a manual ingestion run
// followed by a sweep over whatever became ready.
func (s *Server) FetchNow(ctx echo.Context) error {
	ingested, err := s.ingestHandler.Handle(ctx.Request().Context(), commands.NewIngestOrdersCommand())
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	s.triggerSweep(ctx.Request().Context())

	if ingested == 0 {
		return ctx.JSON(http.StatusOK, MessageResponse{Message: "No new orders found."})
	}
	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Success! Found and processed %d new orders.", ingested),
	})
}

// ApproveOrder handles POST /api/orders/:orderId/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewApproveOrderCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.approveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}

	s.triggerSweep(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order approved successfully."})
}

// ProcessOrder handles POST /api/orders/:orderId/process - the manual
// "process now" trigger, optionally in multipack mode.
func (s *Server) ProcessOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	var request processOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if !request.Multipack {
		// The dashboard sends the flag in the body; older clients pass
		// it as a query parameter.
		request.Multipack, _ = strconv.ParseBool(ctx.QueryParam("multipack"))
	}

	cmd, err := commands.NewProcessOrderCommand(id, request.Multipack)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.processHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order processed successfully."})
}

// DeleteOrder handles DELETE /api/orders/:orderId.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := orderIDParam(ctx)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.errorResponse(ctx, err)
	}

	if err := s.deleteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Order cleared."})
}

// GetPendingApprovals handles GET /api/approvals.
func (s *Server) GetPendingApprovals(ctx echo.Context) error {
	orders, err := s.getPendingApprovalsHandler.Handle(
		ctx.Request().Context(), queries.NewGetPendingApprovalsQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetArchivedOrders handles GET /api/archive.
func (s *Server) GetArchivedOrders(ctx echo.Context) error {
	orders, err := s.getArchivedOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetArchivedOrdersQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetAutoProcessing handles GET /api/settings/autolabel.
func (s *Server) GetAutoProcessing(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, AutoProcessingResponse{IsEnabled: s.settings.AutoProcessing()})
}

// SetAutoProcessing handles POST /api/settings/autolabel. Turning the
// toggle on sweeps the ready queue, so orders that waited while it was
// off get processed right away.
func (s *Server) SetAutoProcessing(ctx echo.Context) error {
	var request autoProcessingRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	changed := s.settings.SetAutoProcessing(request.IsEnabled)
	if changed && request.IsEnabled {
		s.triggerSweep(ctx.Request().Context())
	}

	state := "OFF"
	if request.IsEnabled {
		state = "ON"
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Auto-processing is now " + state})
}

// GetAllTags handles GET /api/admin/tags.
func (s *Server) GetAllTags(ctx echo.Context) error {
	tags, err := s.getAllTagsHandler.Handle(ctx.Request().Context(), queries.NewGetAllTagsQuery())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tags)
}

// RefreshTags handles POST /api/admin/tags/refresh.
func (s *Server) RefreshTags(ctx echo.Context) error {
	count, err := s.refreshTagsHandler.Handle(ctx.Request().Context(), commands.NewRefreshTagsCommand())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Refreshed %d tags.", count),
	})
}

// RefreshProducts handles POST /api/admin/products/refresh.
func (s *Server) RefreshProducts(ctx echo.Context) error {
	count, err := s.refreshProductsHandler.Handle(
		ctx.Request().Context(), commands.NewRefreshProductsCommand())
	if err != nil {
		return s.errorResponse(ctx, err)
	}
	return ctx.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Refreshed %d products.", count),
	})
}

// triggerSweep runs the gated ready-order sweep. Sweep failures only get
// logged; the operation that triggered the sweep already succeeded.
func (s *Server) triggerSweep(ctx context.Context) {
	if err := s.sweepHandler.Handle(ctx, commands.NewProcessReadyOrdersCommand()); err != nil {
		s.logger.Error("ready order sweep failed", "error", err)
	}
}

// errorResponse maps the error taxonomy onto HTTP statuses: unknown
// object 404, invalid state or value 409, missing value 400, everything
// else 500. The message always carries the error text so processing
// failures stay diagnosable from the dashboard.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &invalid):
		code = http.StatusConflict
	case errors.As(err, &required):
		code = http.StatusBadRequest
	}

	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

func orderIDParam(ctx echo.Context) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	return id, nil
}
