// Package http exposes the delivery operations over a REST API built on
// echo. Handlers translate JSON payloads into commands and queries, and map
// the typed error kinds onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"parcelflow/internal/core/application/usecases/commands"
	"parcelflow/internal/core/application/usecases/queries"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/request"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/core/domain/services"
	"parcelflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRequestHandler commands.CreateRequestCommandHandler
	claimCompleteHandler commands.ClaimCompleteCommandHandler
	claimSegmentHandler  commands.ClaimSegmentCommandHandler
	startTaskHandler     commands.StartTaskCommandHandler
	completeTaskHandler  commands.CompleteTaskCommandHandler
	cancelTaskHandler    commands.CancelTaskCommandHandler
	cancelRequestHandler commands.CancelRequestCommandHandler

	// Query handlers
	listClaimableTasksHandler   queries.ListClaimableTasksQueryHandler
	getSegmentsInfoHandler      queries.GetSegmentsInfoQueryHandler
	getCarrierTasksHandler      queries.GetCarrierTasksQueryHandler
	getStoredInWarehouseHandler queries.GetStoredInWarehouseQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createRequestHandler commands.CreateRequestCommandHandler,
	claimCompleteHandler commands.ClaimCompleteCommandHandler,
	claimSegmentHandler commands.ClaimSegmentCommandHandler,
	startTaskHandler commands.StartTaskCommandHandler,
	completeTaskHandler commands.CompleteTaskCommandHandler,
	cancelTaskHandler commands.CancelTaskCommandHandler,
	cancelRequestHandler commands.CancelRequestCommandHandler,
	listClaimableTasksHandler queries.ListClaimableTasksQueryHandler,
	getSegmentsInfoHandler queries.GetSegmentsInfoQueryHandler,
	getCarrierTasksHandler queries.GetCarrierTasksQueryHandler,
	getStoredInWarehouseHandler queries.GetStoredInWarehouseQueryHandler,
) *Server {
	return &Server{
		createRequestHandler:        createRequestHandler,
		claimCompleteHandler:        claimCompleteHandler,
		claimSegmentHandler:         claimSegmentHandler,
		startTaskHandler:            startTaskHandler,
		completeTaskHandler:         completeTaskHandler,
		cancelTaskHandler:           cancelTaskHandler,
		cancelRequestHandler:        cancelRequestHandler,
		listClaimableTasksHandler:   listClaimableTasksHandler,
		getSegmentsInfoHandler:      getSegmentsInfoHandler,
		getCarrierTasksHandler:      getCarrierTasksHandler,
		getStoredInWarehouseHandler: getStoredInWarehouseHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/requests", s.CreateRequest)
	api.GET("/requests/:requestID/segments", s.GetSegmentsInfo)
	api.POST("/requests/:requestID/cancel", s.CancelRequest)
	api.POST("/requests/:requestID/claims/complete", s.ClaimComplete)
	api.POST("/requests/:requestID/claims/segment", s.ClaimSegment)

	api.GET("/tasks/claimable", s.ListClaimableTasks)
	api.POST("/tasks/:taskID/start", s.StartTask)
	api.POST("/tasks/:taskID/complete", s.CompleteTask)
	api.POST("/tasks/:taskID/cancel", s.CancelTask)

	api.GET("/carriers/:carrierID/tasks", s.GetCarrierTasks)
	api.GET("/warehouses/:warehouseID/stored", s.GetStoredInWarehouse)
}

// CreateRequest handles POST /api/v1/requests - publishes a delivery request.
func (s *Server) CreateRequest(ctx echo.Context) error {
	var body CreateRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sourceKind, err := parseSourceKind(body.SourceKind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	requesterID, err := kernel.UUIDFromString(body.RequesterID)
	if err != nil {
		return badRequest(ctx, "Invalid requester id")
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewCreateRequestCommand(
		requestID,
		sourceKind,
		requesterID,
		body.Origin.Street,
		body.Origin.City,
		body.Destination.Street,
		body.Destination.City,
		body.Price,
		body.Deadline,
		body.Description,
	)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.createRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateRequestResponse{RequestID: requestID.String()})
}

// ClaimComplete handles POST /api/v1/requests/:requestID/claims/complete -
// a carrier takes the whole trip.
func (s *Server) ClaimComplete(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	var body ClaimCompleteBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	carrierID, err := kernel.UUIDFromString(body.CarrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	cmd, err := commands.NewClaimCompleteCommand(requestID, carrierID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	taskID, handleErr := s.claimCompleteHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, ClaimResponse{TaskID: taskID.String()})
}

// ClaimSegment handles POST /api/v1/requests/:requestID/claims/segment -
// a carrier takes one leg of a split trip.
func (s *Server) ClaimSegment(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	var body ClaimSegmentBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	carrierID, err := kernel.UUIDFromString(body.CarrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	var warehouseID *kernel.UUID
	if body.WarehouseID != nil {
		id, idErr := kernel.UUIDFromString(*body.WarehouseID)
		if idErr != nil {
			return badRequest(ctx, "Invalid warehouse id")
		}
		warehouseID = &id
	}

	cmd, err := commands.NewClaimSegmentCommand(requestID, carrierID, task.Segment(body.Segment), warehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid claim data: "+err.Error())
	}

	taskID, handleErr := s.claimSegmentHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, ClaimResponse{TaskID: taskID.String()})
}

// StartTask handles POST /api/v1/tasks/:taskID/start - the carrier departs.
func (s *Server) StartTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskID")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewStartTaskCommand(taskID)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	if handleErr := s.startTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteTask handles POST /api/v1/tasks/:taskID/complete - the handover,
// verified by the validation code.
func (s *Server) CompleteTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskID")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	var body CompleteTaskBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteTaskCommand(taskID, body.ValidationCode)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if handleErr := s.completeTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelTask handles POST /api/v1/tasks/:taskID/cancel.
func (s *Server) CancelTask(ctx echo.Context) error {
	taskID, err := pathUUID(ctx, "taskID")
	if err != nil {
		return badRequest(ctx, "Invalid task id")
	}

	cmd, err := commands.NewCancelTaskCommand(taskID)
	if err != nil {
		return badRequest(ctx, "Invalid task data: "+err.Error())
	}

	if handleErr := s.cancelTaskHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelRequest handles POST /api/v1/requests/:requestID/cancel.
func (s *Server) CancelRequest(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	cmd, err := commands.NewCancelRequestCommand(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if handleErr := s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListClaimableTasks handles GET /api/v1/tasks/claimable - the board of
// tasks waiting for a carrier. ?sort=created orders oldest first.
func (s *Server) ListClaimableTasks(ctx echo.Context) error {
	sortByCreation := ctx.QueryParam("sort") == "created"
	query := queries.NewListClaimableTasksQuery(sortByCreation)

	tasks, err := s.listClaimableTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ClaimableTaskDTO, len(tasks))
	for i, t := range tasks {
		response[i] = ClaimableTaskDTO{
			TaskID:      t.TaskID.String(),
			RequestID:   t.RequestID.String(),
			Segment:     t.Segment,
			Origin:      AddressDTO{Street: t.OriginStreet, City: t.OriginCity},
			Destination: AddressDTO{Street: t.DestinationStreet, City: t.DestinationCity},
			Price:       t.Price,
			CreatedAt:   t.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSegmentsInfo handles GET /api/v1/requests/:requestID/segments - the
// split-trip picture of one request.
func (s *Server) GetSegmentsInfo(ctx echo.Context) error {
	requestID, err := pathUUID(ctx, "requestID")
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	query, err := queries.NewGetSegmentsInfoQuery(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid request id")
	}

	info, err := s.getSegmentsInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SegmentsInfoResponse{
		RequestID:           info.RequestID.String(),
		Dropoff:             segmentInfoDTO(info.Dropoff),
		Pickup:              segmentInfoDTO(info.Pickup),
		HasComplete:         info.HasComplete,
		AllSegmentsAssigned: info.AllSegmentsAssigned,
		CanClaimDropoff:     info.CanClaimDropoff,
		CanClaimPickup:      info.CanClaimPickup,
	})
}

// GetCarrierTasks handles GET /api/v1/carriers/:carrierID/tasks - the
// carrier's worksheet, terminal tasks included.
func (s *Server) GetCarrierTasks(ctx echo.Context) error {
	carrierID, err := pathUUID(ctx, "carrierID")
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	query, err := queries.NewGetCarrierTasksQuery(carrierID)
	if err != nil {
		return badRequest(ctx, "Invalid carrier id")
	}

	tasks, err := s.getCarrierTasksHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CarrierTaskDTO, len(tasks))
	for i, t := range tasks {
		response[i] = CarrierTaskDTO{
			TaskID:      t.TaskID.String(),
			RequestID:   t.RequestID.String(),
			Segment:     t.Segment,
			Status:      t.Status,
			Origin:      AddressDTO{Street: t.OriginStreet, City: t.OriginCity},
			Destination: AddressDTO{Street: t.DestinationStreet, City: t.DestinationCity},
			Price:       t.Price,
			CreatedAt:   t.CreatedAt,
			StartedAt:   t.StartedAt,
			FinishedAt:  t.FinishedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStoredInWarehouse handles GET /api/v1/warehouses/:warehouseID/stored -
// the parcels sitting at the warehouse awaiting their pickup leg.
func (s *Server) GetStoredInWarehouse(ctx echo.Context) error {
	warehouseID, err := pathUUID(ctx, "warehouseID")
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	query, err := queries.NewGetStoredInWarehouseQuery(warehouseID)
	if err != nil {
		return badRequest(ctx, "Invalid warehouse id")
	}

	goods, err := s.getStoredInWarehouseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]StoredGoodsDTO, len(goods))
	for i, g := range goods {
		response[i] = StoredGoodsDTO{
			TaskID:      g.TaskID.String(),
			RequestID:   g.RequestID.String(),
			Destination: AddressDTO{Street: g.DestinationStreet, City: g.DestinationCity},
			StoredAt:    g.StoredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func segmentInfoDTO(info *queries.SegmentInfo) *SegmentInfoDTO {
	if info == nil {
		return nil
	}

	dto := &SegmentInfoDTO{
		TaskID:      info.TaskID.String(),
		Status:      info.Status,
		Origin:      AddressDTO{Street: info.OriginStreet, City: info.OriginCity},
		Destination: AddressDTO{Street: info.DestinationStreet, City: info.DestinationCity},
		Price:       info.Price,
	}
	if info.CarrierID != nil {
		carrierID := info.CarrierID.String()
		dto.CarrierID = &carrierID
	}
	return dto
}

func parseSourceKind(kind string) (request.SourceKind, error) {
	switch kind {
	case "individual":
		return request.SourceIndividual, nil
	case "merchant":
		return request.SourceMerchant, nil
	default:
		return request.SourceUnknown, errors.New("source_kind must be \"individual\" or \"merchant\"")
	}
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps the typed error kinds onto HTTP status codes: missing
// objects to 404, claim races and state violations to 409, rejected values
// to 422, gate denials to 403.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var invalidState *errs.InvalidStateError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.As(err, &invalidState) && errors.Is(invalidState.Cause, services.ErrCarrierNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
