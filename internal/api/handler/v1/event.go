package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/request"
	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/response"
	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.AnnotatedEvent, error)
	GetEvents(ctx context.Context, filter domain.EventFilter) ([]domain.AnnotatedEvent, error)
	GetEvent(ctx context.Context, id uint) (domain.AnnotatedEvent, error)
	UpdateEvent(ctx context.Context, id uint, changes map[string]interface{}) (domain.AnnotatedEvent, error)
	DeleteEvent(ctx context.Context, id uint) error
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	GetBookings(ctx context.Context, eventID uint) ([]domain.Booking, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleGetEvents godoc
// @Summary      List events with guestlist metrics
// @Tags         events
// @Produce      json
// @Param        genre     query      string  false "genre filter, case-insensitive; 'all' disables it"
// @Param        upcoming  query      boolean false "only events from today onward"
// @Param        featured  query      boolean false "featured flag filter"
// @Success      200      {array}    domain.AnnotatedEvent
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	filter, err := parseEventFilter(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	events, err := h.svc.GetEvents(ctx.Request.Context(), filter)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event by id with guestlist metrics
// @Tags         events
// @Produce      json
// @Param        eventID  path       integer true "event ID"
// @Success      200      {object}   domain.AnnotatedEvent
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "eventID")
	if !ok {
		return
	}

	event, err := h.svc.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event"))

			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        request  body       request.CreateEventRequest true "request body"
// @Success      201      {object}   domain.AnnotatedEvent
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	event, err := req.ToDomain()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), event)
	if err != nil {
		// A dangling club id is a payload problem, not a server one.
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrClubNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateEvent godoc
// @Summary      Update an event (partial payload)
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       integer true "event ID"
// @Param        request  body       request.UpdateEventRequest true "request body"
// @Success      200      {object}   domain.AnnotatedEvent
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [put]
func (h *EventHandler) HandleUpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "eventID")
	if !ok {
		return
	}

	var req request.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	changes, err := req.Changes()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.UpdateEvent(ctx.Request.Context(), id, changes)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event"))

			return
		}
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrClubNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateEvent -> h.svc.UpdateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       integer true "event ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "eventID")
	if !ok {
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event"))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCreateBooking godoc
// @Summary      Submit a guestlist booking for an event
// @Tags         events
// @Produce      json
// @Param        eventID  path       integer true "event ID"
// @Param        request  body       request.CreateBookingRequest true "request body"
// @Success      201      {object}   domain.Booking
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/bookings [post]
func (h *EventHandler) HandleCreateBooking(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "eventID")
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	booking, err := h.svc.CreateBooking(ctx.Request.Context(), domain.Booking{
		EventID: id,
		Couples: req.Couples,
		Ladies:  req.Ladies,
		Stags:   req.Stags,
	})
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event"))

			return
		}

		err = fmt.Errorf("v1.HandleCreateBooking -> h.svc.CreateBooking -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, booking)
}

// HandleGetBookings godoc
// @Summary      List the raw bookings of an event
// @Security     BearerAuth
// @Tags         events
// @Produce      json
// @Param        eventID  path       integer true "event ID"
// @Success      200      {array}    domain.Booking
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /events/{eventID}/bookings [get]
func (h *EventHandler) HandleGetBookings(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "eventID")
	if !ok {
		return
	}

	bookings, err := h.svc.GetBookings(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event"))

			return
		}

		err = fmt.Errorf("v1.HandleGetBookings -> h.svc.GetBookings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, bookings)
}

// parseEventFilter reads the AND-composed listing predicates off the query
// string. genre=all means no genre filter.
func parseEventFilter(ctx *gin.Context) (domain.EventFilter, error) {
	var filter domain.EventFilter

	if genre := ctx.Query("genre"); genre != "" && !strings.EqualFold(genre, "all") {
		filter.Genre = genre
	}

	if upcoming := ctx.Query("upcoming"); upcoming != "" {
		parsed, err := strconv.ParseBool(upcoming)
		if err != nil {
			return domain.EventFilter{}, errors.New("upcoming must be a boolean")
		}
		filter.Upcoming = parsed
	}

	if featured := ctx.Query("featured"); featured != "" {
		parsed, err := strconv.ParseBool(featured)
		if err != nil {
			return domain.EventFilter{}, errors.New("featured must be a boolean")
		}
		filter.Featured = &parsed
	}

	return filter, nil
}
