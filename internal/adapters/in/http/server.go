package http

import (
	"errors"
	"net/http"

	"washcubes/internal/core/application/usecases/commands"
	"washcubes/internal/core/application/usecases/queries"
	"washcubes/internal/core/domain/model/kernel"
	"washcubes/internal/core/domain/model/locker"
	"washcubes/internal/core/domain/model/order"
	"washcubes/internal/core/domain/services"
	"washcubes/internal/core/ports"
	"washcubes/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler            commands.CreateOrderCommandHandler
	cancelOrderHandler            commands.CancelOrderCommandHandler
	confirmDropOffHandler         commands.ConfirmDropOffCommandHandler
	approveOrderHandler           commands.ApproveOrderCommandHandler
	editOrderHandler              commands.EditOrderCommandHandler
	resolveOrderErrorHandler      commands.ResolveOrderErrorCommandHandler
	rejectOrderErrorHandler       commands.RejectOrderErrorCommandHandler
	approveReturnHandler          commands.ApproveReturnCommandHandler
	completeProcessingHandler     commands.CompleteProcessingCommandHandler
	assignPickupBatchHandler      commands.AssignPickupBatchCommandHandler
	assignDeliveryBatchHandler    commands.AssignDeliveryBatchCommandHandler
	confirmRiderCollectionHandler commands.ConfirmRiderCollectionCommandHandler
	confirmRiderDeliveryHandler   commands.ConfirmRiderDeliveryCommandHandler
	confirmCollectionHandler      commands.ConfirmCollectionCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	getOrderByNumberHandler    queries.GetOrderByNumberQueryHandler
	getUserOrdersHandler       queries.GetUserOrdersQueryHandler
	getOperatorWorklistHandler queries.GetOperatorWorklistQueryHandler
	getSiteAvailabilityHandler queries.GetSiteAvailabilityQueryHandler
	getAllSitesHandler         queries.GetAllSitesQueryHandler
	getPickupQueueHandler      queries.GetPickupQueueQueryHandler
	getDeliveryQueueHandler    queries.GetDeliveryQueueQueryHandler
	getReadyCountsHandler      queries.GetReadyCountsQueryHandler
}

// ServerHandlers groups every use case the server dispatches to.
type ServerHandlers struct {
	CreateOrder            commands.CreateOrderCommandHandler
	CancelOrder            commands.CancelOrderCommandHandler
	ConfirmDropOff         commands.ConfirmDropOffCommandHandler
	ApproveOrder           commands.ApproveOrderCommandHandler
	EditOrder              commands.EditOrderCommandHandler
	ResolveOrderError      commands.ResolveOrderErrorCommandHandler
	RejectOrderError       commands.RejectOrderErrorCommandHandler
	ApproveReturn          commands.ApproveReturnCommandHandler
	CompleteProcessing     commands.CompleteProcessingCommandHandler
	AssignPickupBatch      commands.AssignPickupBatchCommandHandler
	AssignDeliveryBatch    commands.AssignDeliveryBatchCommandHandler
	ConfirmRiderCollection commands.ConfirmRiderCollectionCommandHandler
	ConfirmRiderDelivery   commands.ConfirmRiderDeliveryCommandHandler
	ConfirmCollection      commands.ConfirmCollectionCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	GetOrderByNumber    queries.GetOrderByNumberQueryHandler
	GetUserOrders       queries.GetUserOrdersQueryHandler
	GetOperatorWorklist queries.GetOperatorWorklistQueryHandler
	GetSiteAvailability queries.GetSiteAvailabilityQueryHandler
	GetAllSites         queries.GetAllSitesQueryHandler
	GetPickupQueue      queries.GetPickupQueueQueryHandler
	GetDeliveryQueue    queries.GetDeliveryQueueQueryHandler
	GetReadyCounts      queries.GetReadyCountsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createOrderHandler:            handlers.CreateOrder,
		cancelOrderHandler:            handlers.CancelOrder,
		confirmDropOffHandler:         handlers.ConfirmDropOff,
		approveOrderHandler:           handlers.ApproveOrder,
		editOrderHandler:              handlers.EditOrder,
		resolveOrderErrorHandler:      handlers.ResolveOrderError,
		rejectOrderErrorHandler:       handlers.RejectOrderError,
		approveReturnHandler:          handlers.ApproveReturn,
		completeProcessingHandler:     handlers.CompleteProcessing,
		assignPickupBatchHandler:      handlers.AssignPickupBatch,
		assignDeliveryBatchHandler:    handlers.AssignDeliveryBatch,
		confirmRiderCollectionHandler: handlers.ConfirmRiderCollection,
		confirmRiderDeliveryHandler:   handlers.ConfirmRiderDelivery,
		confirmCollectionHandler:      handlers.ConfirmCollection,
		getOrderHandler:               handlers.GetOrder,
		getOrderByNumberHandler:       handlers.GetOrderByNumber,
		getUserOrdersHandler:          handlers.GetUserOrders,
		getOperatorWorklistHandler:    handlers.GetOperatorWorklist,
		getSiteAvailabilityHandler:    handlers.GetSiteAvailability,
		getAllSitesHandler:            handlers.GetAllSites,
		getPickupQueueHandler:         handlers.GetPickupQueue,
		getDeliveryQueueHandler:       handlers.GetDeliveryQueue,
		getReadyCountsHandler:         handlers.GetReadyCounts,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/worklist", s.GetOperatorWorklist)
	api.GET("/orders/number/:orderNumber", s.GetOrderByNumber)
	api.GET("/orders/:orderID", s.GetOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)
	api.POST("/orders/:orderID/drop-off", s.ConfirmDropOff)
	api.POST("/orders/:orderID/approve", s.ApproveOrder)
	api.POST("/orders/:orderID/edit", s.EditOrder)
	api.POST("/orders/:orderID/error/resolve", s.ResolveOrderError)
	api.POST("/orders/:orderID/error/reject", s.RejectOrderError)
	api.POST("/orders/:orderID/return/approve", s.ApproveReturn)
	api.POST("/orders/:orderID/processing-complete", s.CompleteProcessing)
	api.POST("/orders/:orderID/rider-collection", s.ConfirmRiderCollection)
	api.POST("/orders/:orderID/rider-delivery", s.ConfirmRiderDelivery)
	api.POST("/orders/:orderID/collect", s.ConfirmCollection)

	api.POST("/jobs/pickup", s.AssignPickupBatch)
	api.POST("/jobs/delivery", s.AssignDeliveryBatch)

	api.GET("/users/:userID/orders", s.GetUserOrders)

	api.GET("/sites", s.GetAllSites)
	api.GET("/sites/ready-counts", s.GetReadyCounts)
	api.GET("/sites/:siteID/availability", s.GetSiteAvailability)
	api.GET("/sites/:siteID/pickup-queue", s.GetPickupQueue)
	api.GET("/sites/:siteID/delivery-queue", s.GetDeliveryQueue)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}

// commandError maps use case failures to HTTP statuses.
func commandError(ctx echo.Context, err error, action string) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, order.ErrInvalidTransition):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, ports.ErrConcurrentUpdate):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrNoCompartmentAvailable):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to "+action)
	}
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

type itemSelectionRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func toItemSelections(items []itemSelectionRequest) []commands.ItemSelection {
	selections := make([]commands.ItemSelection, len(items))
	for i, item := range items {
		selections[i] = commands.ItemSelection{Name: item.Name, Quantity: item.Quantity}
	}

	return selections
}

type createOrderRequest struct {
	UserID           string                 `json:"userId"`
	ServiceID        string                 `json:"serviceId"`
	DropOffSiteID    string                 `json:"dropOffSiteId"`
	CollectionSiteID string                 `json:"collectionSiteId"`
	Size             string                 `json:"size"`
	Items            []itemSelectionRequest `json:"items"`
}

type createOrderResponse struct {
	OrderID            string  `json:"orderId"`
	OrderNumber        string  `json:"orderNumber"`
	DropOffCompartment string  `json:"dropOffCompartment"`
	EstimatedPrice     float64 `json:"estimatedPrice"`
}

// CreateOrder handles POST /api/v1/orders - places a new order and reserves
// a drop-off compartment.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid service id: "+err.Error())
	}

	dropOffSiteID, err := kernel.UUIDFromString(req.DropOffSiteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid drop-off site id: "+err.Error())
	}

	collectionSiteID, err := kernel.UUIDFromString(req.CollectionSiteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid collection site id: "+err.Error())
	}

	size, err := locker.SizeFromString(req.Size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid compartment size: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		userID,
		serviceID,
		dropOffSiteID,
		collectionSiteID,
		size,
		toItemSelections(req.Items),
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "create order")
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		OrderID:            cmd.OrderID().String(),
		OrderNumber:        result.OrderNumber,
		DropOffCompartment: result.DropOffCompartment,
		EstimatedPrice:     result.EstimatedPrice,
	})
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDropOff handles POST /api/v1/orders/:orderID/drop-off.
func (s *Server) ConfirmDropOff(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmDropOffCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmDropOffHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "confirm drop-off")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveOrder handles POST /api/v1/orders/:orderID/approve - operator marks
// the bag contents as matching the declared items.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "approve order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

type editOrderRequest struct {
	Items        []itemSelectionRequest `json:"items"`
	ProofPicURLs []string               `json:"proofPicUrls"`
	FinalPrice   float64                `json:"finalPrice"`
}

// EditOrder handles POST /api/v1/orders/:orderID/edit - operator corrects the
// item list after finding a discrepancy, opening a dispute for the customer.
func (s *Server) EditOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req editOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewEditOrderCommand(orderID, toItemSelections(req.Items), req.ProofPicURLs, req.FinalPrice)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.editOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "edit order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveOrderError handles POST /api/v1/orders/:orderID/error/resolve -
// customer accepts the corrected items.
func (s *Server) ResolveOrderError(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewResolveOrderErrorCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.resolveOrderErrorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "resolve order error")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrderError handles POST /api/v1/orders/:orderID/error/reject -
// customer refuses the corrected items and asks for the bag back.
func (s *Server) RejectOrderError(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewRejectOrderErrorCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.rejectOrderErrorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "reject order error")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveReturn handles POST /api/v1/orders/:orderID/return/approve - operator
// confirms the rejected bag is packed for return.
func (s *Server) ApproveReturn(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewApproveReturnCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.approveReturnHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "approve return")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteProcessing handles POST /api/v1/orders/:orderID/processing-complete.
func (s *Server) CompleteProcessing(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewCompleteProcessingCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.completeProcessingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "complete processing")
	}

	return ctx.NoContent(http.StatusNoContent)
}

type assignBatchRequest struct {
	SiteID   string   `json:"siteId"`
	RiderID  string   `json:"riderId"`
	OrderIDs []string `json:"orderIds"`
}

type batchResultResponse struct {
	JobID               string   `json:"jobId"`
	AssignedOrderIDs    []string `json:"assignedOrderIds"`
	UnavailableOrderIDs []string `json:"unavailableOrderIds"`
}

func (r assignBatchRequest) orderIDs() ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, len(r.OrderIDs))
	for i, raw := range r.OrderIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}

		ids[i] = id
	}

	return ids, nil
}

func toBatchResultResponse(result commands.BatchResult) batchResultResponse {
	assigned := make([]string, len(result.AssignedOrderIDs))
	for i, id := range result.AssignedOrderIDs {
		assigned[i] = id.String()
	}

	unavailable := make([]string, len(result.UnavailableOrderIDs))
	for i, id := range result.UnavailableOrderIDs {
		unavailable[i] = id.String()
	}

	return batchResultResponse{
		JobID:               result.JobID,
		AssignedOrderIDs:    assigned,
		UnavailableOrderIDs: unavailable,
	}
}

// AssignPickupBatch handles POST /api/v1/jobs/pickup - claims dropped-off
// orders at a site and dispatches a locker-to-laundry rider job.
func (s *Server) AssignPickupBatch(ctx echo.Context) error {
	var req assignBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	siteID, err := kernel.UUIDFromString(req.SiteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	orderIDs, err := req.orderIDs()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAssignPickupBatchCommand(siteID, req.RiderID, orderIDs)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid batch data: "+err.Error())
	}

	result, err := s.assignPickupBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "assign pickup batch")
	}

	return ctx.JSON(http.StatusOK, toBatchResultResponse(result))
}

// AssignDeliveryBatch handles POST /api/v1/jobs/delivery - claims processed
// orders and dispatches a laundry-to-locker rider job.
func (s *Server) AssignDeliveryBatch(ctx echo.Context) error {
	var req assignBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	siteID, err := kernel.UUIDFromString(req.SiteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	orderIDs, err := req.orderIDs()
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewAssignDeliveryBatchCommand(siteID, req.RiderID, orderIDs)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid batch data: "+err.Error())
	}

	result, err := s.assignDeliveryBatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return commandError(ctx, err, "assign delivery batch")
	}

	return ctx.JSON(http.StatusOK, toBatchResultResponse(result))
}

// ConfirmRiderCollection handles POST /api/v1/orders/:orderID/rider-collection -
// rider confirms the bag left the drop-off compartment.
func (s *Server) ConfirmRiderCollection(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmRiderCollectionCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmRiderCollectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "confirm rider collection")
	}

	return ctx.NoContent(http.StatusNoContent)
}

type confirmRiderDeliveryRequest struct {
	CompartmentNumber string `json:"compartmentNumber"`
}

// ConfirmRiderDelivery handles POST /api/v1/orders/:orderID/rider-delivery -
// rider places the cleaned bag into a collection compartment.
func (s *Server) ConfirmRiderDelivery(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req confirmRiderDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewConfirmRiderDeliveryCommand(orderID, req.CompartmentNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmRiderDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "confirm rider delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmCollection handles POST /api/v1/orders/:orderID/collect - customer
// takes the cleaned bag, completing the order and freeing the compartment.
func (s *Server) ConfirmCollection(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	cmd, err := commands.NewConfirmCollectionCommand(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.confirmCollectionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr, "confirm collection")
	}

	return ctx.NoContent(http.StatusNoContent)
}

type orderSummaryResponse struct {
	ID                    string  `json:"id"`
	OrderNumber           string  `json:"orderNumber"`
	UserID                string  `json:"userId"`
	ServiceID             string  `json:"serviceId"`
	DropOffSiteID         string  `json:"dropOffSiteId"`
	DropOffCompartment    string  `json:"dropOffCompartment"`
	CollectionSiteID      string  `json:"collectionSiteId"`
	CollectionCompartment string  `json:"collectionCompartment"`
	EstimatedPrice        float64 `json:"estimatedPrice"`
	FinalPrice            float64 `json:"finalPrice"`
	Status                string  `json:"status"`
	SelectedByRider       bool    `json:"selectedByRider"`
	CreatedAt             string  `json:"createdAt"`
}

func toOrderSummaryResponse(summary queries.OrderSummary) orderSummaryResponse {
	return orderSummaryResponse{
		ID:                    summary.ID.String(),
		OrderNumber:           summary.OrderNumber,
		UserID:                summary.UserID.String(),
		ServiceID:             summary.ServiceID.String(),
		DropOffSiteID:         summary.DropOffSiteID.String(),
		DropOffCompartment:    summary.DropOffCompartment,
		CollectionSiteID:      summary.CollectionSiteID.String(),
		CollectionCompartment: summary.CollectionCompartment,
		EstimatedPrice:        summary.EstimatedPrice,
		FinalPrice:            summary.FinalPrice,
		Status:                summary.Status,
		SelectedByRider:       summary.SelectedByRider,
		CreatedAt:             summary.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toOrderSummaryResponses(summaries []queries.OrderSummary) []orderSummaryResponse {
	response := make([]orderSummaryResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummaryResponse(summary)
	}

	return response
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	summary, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errorJSON(ctx, http.StatusNotFound, err.Error())
		}

		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponse(summary))
}

// GetOrderByNumber handles GET /api/v1/orders/number/:orderNumber.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("orderNumber"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order number: "+err.Error())
	}

	summary, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return errorJSON(ctx, http.StatusNotFound, err.Error())
		}

		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponse(summary))
}

// GetUserOrders handles GET /api/v1/users/:userID/orders - newest first.
func (s *Server) GetUserOrders(ctx echo.Context) error {
	userID, err := pathUUID(ctx, "userID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid user id: "+err.Error())
	}

	summaries, err := s.getUserOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetOperatorWorklist handles GET /api/v1/orders/worklist - orders awaiting
// verification or return handling at the laundry site.
func (s *Server) GetOperatorWorklist(ctx echo.Context) error {
	query := queries.NewGetOperatorWorklistQuery()

	summaries, err := s.getOperatorWorklistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve worklist")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

type sizeAvailabilityResponse struct {
	Size      string `json:"size"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

// GetSiteAvailability handles GET /api/v1/sites/:siteID/availability -
// per-size compartment counts at one site.
func (s *Server) GetSiteAvailability(ctx echo.Context) error {
	siteID, err := pathUUID(ctx, "siteID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	query, err := queries.NewGetSiteAvailabilityQuery(siteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	availability, err := s.getSiteAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve availability")
	}

	response := make([]sizeAvailabilityResponse, len(availability))
	for i, entry := range availability {
		response[i] = sizeAvailabilityResponse{
			Size:      entry.Size,
			Total:     entry.Total,
			Available: entry.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPickupQueue handles GET /api/v1/sites/:siteID/pickup-queue - orders
// waiting at the site's lockers for a rider.
func (s *Server) GetPickupQueue(ctx echo.Context) error {
	siteID, err := pathUUID(ctx, "siteID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	query, err := queries.NewGetPickupQueueQuery(siteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	summaries, err := s.getPickupQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve pickup queue")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

// GetDeliveryQueue handles GET /api/v1/sites/:siteID/delivery-queue - cleaned
// orders waiting for return to the site.
func (s *Server) GetDeliveryQueue(ctx echo.Context) error {
	siteID, err := pathUUID(ctx, "siteID")
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	query, err := queries.NewGetDeliveryQueueQuery(siteID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid site id: "+err.Error())
	}

	summaries, err := s.getDeliveryQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve delivery queue")
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(summaries))
}

type siteReadyCountsResponse struct {
	SiteID        string `json:"siteId"`
	PickupReady   int    `json:"pickupReady"`
	DeliveryReady int    `json:"deliveryReady"`
}

// GetReadyCounts handles GET /api/v1/sites/ready-counts - per-site counts of
// orders waiting on each rider leg.
func (s *Server) GetReadyCounts(ctx echo.Context) error {
	query := queries.NewGetReadyCountsQuery()

	counts, err := s.getReadyCountsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve ready counts")
	}

	response := make([]siteReadyCountsResponse, len(counts))
	for i, entry := range counts {
		response[i] = siteReadyCountsResponse{
			SiteID:        entry.SiteID.String(),
			PickupReady:   entry.PickupReady,
			DeliveryReady: entry.DeliveryReady,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type siteOverviewResponse struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	TotalCompartments     int     `json:"totalCompartments"`
	AvailableCompartments int     `json:"availableCompartments"`
}

// GetAllSites handles GET /api/v1/sites.
func (s *Server) GetAllSites(ctx echo.Context) error {
	query := queries.NewGetAllSitesQuery()

	sites, err := s.getAllSitesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve sites")
	}

	response := make([]siteOverviewResponse, len(sites))
	for i, site := range sites {
		response[i] = siteOverviewResponse{
			ID:                    site.ID.String(),
			Name:                  site.Name,
			Latitude:              site.Location.Latitude(),
			Longitude:             site.Location.Longitude(),
			TotalCompartments:     site.TotalCompartments,
			AvailableCompartments: site.AvailableCompartments,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
