package http

import (
	"errors"
	"net/http"

	"warehouse/internal/adapters/in/feed"
	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/core/domain/model/worker"
	"warehouse/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Server exposes the feed vocabulary and the engine views over HTTP.
type Server struct {
	// Commands
	dispatcher *feed.Dispatcher

	// Query handlers
	getRequestsHandler  queries.GetRequestsQueryHandler
	getInventoryHandler queries.GetInventoryQueryHandler
	getWorkersHandler   queries.GetWorkersQueryHandler
	// nil when no database is configured
	getCompletedHandler *queries.GetCompletedRequestsQueryHandler
}

func NewServer(
	dispatcher *feed.Dispatcher,
	getRequestsHandler queries.GetRequestsQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	getWorkersHandler queries.GetWorkersQueryHandler,
	getCompletedHandler *queries.GetCompletedRequestsQueryHandler,
) *Server {
	return &Server{
		dispatcher:          dispatcher,
		getRequestsHandler:  getRequestsHandler,
		getInventoryHandler: getInventoryHandler,
		getWorkersHandler:   getWorkersHandler,
		getCompletedHandler: getCompletedHandler,
	}
}

// PostEvent handles POST /api/v1/events.
//
//	@Summary	Apply one feed event
//	@Accept		json
//	@Param		event	body	NewEvent	true	"Feed line"
//	@Success	202
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Failure	409	{object}	Error
//	@Router		/api/v1/events [post]
func (s *Server) PostEvent(ctx echo.Context) error {
	var body NewEvent
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ev, err := feed.ParseLine(body.Line)
	if err != nil {
		return errorResponse(ctx, err)
	}
	if err := s.dispatcher.Dispatch(ctx.Request().Context(), ev); err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.NoContent(http.StatusAccepted)
}

// GetRequests handles GET /api/v1/requests.
//
//	@Summary	List picking requests
//	@Produce	json
//	@Param		status	query	string	false	"Filter by status"
//	@Success	200	{array}		Request
//	@Failure	400	{object}	Error
//	@Router		/api/v1/requests [get]
func (s *Server) GetRequests(ctx echo.Context) error {
	var status string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &status); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter status",
		})
	}

	query, err := queries.NewGetRequestsQuery(status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	prs, err := s.getRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Request, len(prs))
	for i, pr := range prs {
		orders := make([]Order, len(pr.Orders))
		for j, o := range pr.Orders {
			orders[j] = Order{Color: o.Color, Model: o.Model, Front: o.Front, Back: o.Back}
		}
		response[i] = Request{
			ID:           pr.ID,
			Status:       pr.Status,
			CorrectOrder: pr.CorrectOrder,
			Remaining:    pr.Remaining,
			Orders:       orders,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetInventory handles GET /api/v1/inventory.
//
//	@Summary	Current stock levels
//	@Produce	json
//	@Success	200	{array}	Level
//	@Router		/api/v1/inventory [get]
func (s *Server) GetInventory(ctx echo.Context) error {
	return s.levels(ctx, false)
}

// GetShortages handles GET /api/v1/shortages.
//
//	@Summary	Levels below full stock
//	@Produce	json
//	@Success	200	{array}	Level
//	@Router		/api/v1/shortages [get]
func (s *Server) GetShortages(ctx echo.Context) error {
	return s.levels(ctx, true)
}

func (s *Server) levels(ctx echo.Context, shortagesOnly bool) error {
	levels, err := s.getInventoryHandler.Handle(ctx.Request().Context(), queries.NewGetInventoryQuery(shortagesOnly))
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Level, len(levels))
	for i, l := range levels {
		response[i] = Level{SKU: l.SKU, Location: l.Location, Count: l.Count}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetWorkers handles GET /api/v1/workers.
//
//	@Summary	Registered workers
//	@Produce	json
//	@Success	200	{array}	Worker
//	@Router		/api/v1/workers [get]
func (s *Server) GetWorkers(ctx echo.Context) error {
	workers, err := s.getWorkersHandler.Handle(ctx.Request().Context(), queries.NewGetWorkersQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Worker, len(workers))
	for i, w := range workers {
		response[i] = Worker{
			Name:      w.Name,
			Role:      w.Role,
			Idle:      w.Idle,
			Waiting:   w.Waiting,
			RequestID: w.RequestID,
			Target:    w.Target,
			Scans:     w.Scans,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetCompletedRequests handles GET /api/v1/completed.
//
//	@Summary	Loaded requests saved by the snapshot job
//	@Produce	json
//	@Success	200	{array}		CompletedRequest
//	@Failure	503	{object}	Error
//	@Router		/api/v1/completed [get]
func (s *Server) GetCompletedRequests(ctx echo.Context) error {
	if s.getCompletedHandler == nil {
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "No database configured",
		})
	}

	completed, err := s.getCompletedHandler.Handle(ctx.Request().Context(), queries.NewGetCompletedRequestsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve completed requests",
		})
	}

	response := make([]CompletedRequest, len(completed))
	for i, c := range completed {
		response[i] = CompletedRequest{
			RequestID:    c.RequestID,
			CorrectOrder: c.CorrectOrder,
			CompletedAt:  c.CompletedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func errorResponse(ctx echo.Context, err error) error {
	code := statusCode(err)
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, feed.ErrInvalidLine),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, worker.ErrWorkerIdle),
		errors.Is(err, worker.ErrWorkerBusy),
		errors.Is(err, worker.ErrRoleHasNoStage),
		errors.Is(err, inventory.ErrOutOfStock),
		errors.Is(err, engine.ErrSequenceMismatch):
		return http.StatusConflict
	case errors.Is(err, engine.ErrRunnerStopped):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
