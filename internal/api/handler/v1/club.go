package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/request"
	"github.com/guestlistapp/guestlist-api/internal/api/handler/v1/response"
	"github.com/guestlistapp/guestlist-api/internal/domain"
	"github.com/guestlistapp/guestlist-api/internal/service"
)

var errInvalidID = errors.New("id must be a positive integer")

type ClubService interface {
	CreateClub(ctx context.Context, club domain.Club) (domain.Club, error)
	GetClubs(ctx context.Context) ([]domain.Club, error)
	GetClub(ctx context.Context, id uint) (domain.Club, error)
	UpdateClub(ctx context.Context, id uint, changes map[string]interface{}) (domain.Club, error)
	DeleteClub(ctx context.Context, id uint) error
	GenerateCredentials(ctx context.Context, id uint) (service.ClubCredentials, error)
}

type ClubEventService interface {
	GetEventsByClub(ctx context.Context, clubID uint) ([]domain.AnnotatedEvent, error)
}

type ClubHandler struct {
	svc      ClubService
	eventSvc ClubEventService
}

func NewClubHandler(svc ClubService, eventSvc ClubEventService) *ClubHandler {
	return &ClubHandler{
		svc:      svc,
		eventSvc: eventSvc,
	}
}

// HandleGetClubs godoc
// @Summary      List all clubs
// @Tags         clubs
// @Produce      json
// @Success      200      {array}    domain.Club
// @Failure      500      {object}   response.Err
// @Router       /clubs [get]
func (h *ClubHandler) HandleGetClubs(ctx *gin.Context) {
	clubs, err := h.svc.GetClubs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetClubs -> h.svc.GetClubs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, clubs)
}

// HandleGetClub godoc
// @Summary      Get a club by id
// @Tags         clubs
// @Produce      json
// @Param        clubID   path       integer true "club ID"
// @Success      200      {object}   domain.Club
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clubs/{clubID} [get]
func (h *ClubHandler) HandleGetClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clubID")
	if !ok {
		return
	}

	club, err := h.svc.GetClub(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("club"))

			return
		}

		err = fmt.Errorf("v1.HandleGetClub -> h.svc.GetClub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, club)
}

// HandleGetClubEvents godoc
// @Summary      List a club's events with guestlist metrics
// @Tags         clubs
// @Produce      json
// @Param        clubID   path       integer true "club ID"
// @Success      200      {array}    domain.AnnotatedEvent
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clubs/{clubID}/events [get]
func (h *ClubHandler) HandleGetClubEvents(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clubID")
	if !ok {
		return
	}

	events, err := h.eventSvc.GetEventsByClub(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("club"))

			return
		}

		err = fmt.Errorf("v1.HandleGetClubEvents -> h.eventSvc.GetEventsByClub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleCreateClub godoc
// @Summary      Create a club
// @Security     BearerAuth
// @Tags         clubs
// @Produce      json
// @Param        request  body       request.CreateClubRequest true "request body"
// @Success      201      {object}   domain.Club
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clubs [post]
func (h *ClubHandler) HandleCreateClub(ctx *gin.Context) {
	var req request.CreateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	club, err := h.svc.CreateClub(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateClub -> h.svc.CreateClub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, club)
}

// HandleUpdateClub godoc
// @Summary      Update a club (partial payload)
// @Security     BearerAuth
// @Tags         clubs
// @Produce      json
// @Param        clubID   path       integer true "club ID"
// @Param        request  body       request.UpdateClubRequest true "request body"
// @Success      200      {object}   domain.Club
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clubs/{clubID} [put]
func (h *ClubHandler) HandleUpdateClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clubID")
	if !ok {
		return
	}

	var req request.UpdateClubRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	club, err := h.svc.UpdateClub(ctx.Request.Context(), id, req.Changes())
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("club"))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateClub -> h.svc.UpdateClub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, club)
}

// HandleDeleteClub godoc
// @Summary      Delete a club
// @Security     BearerAuth
// @Tags         clubs
// @Produce      json
// @Param        clubID   path       integer true "club ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clubs/{clubID} [delete]
func (h *ClubHandler) HandleDeleteClub(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clubID")
	if !ok {
		return
	}

	if err := h.svc.DeleteClub(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("club"))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteClub -> h.svc.DeleteClub -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleGenerateCredentials godoc
// @Summary      Generate club-portal credentials; the password is returned exactly once
// @Security     BearerAuth
// @Tags         clubs
// @Produce      json
// @Param        clubID   path       integer true "club ID"
// @Success      200      {object}   response.ClubCredentialsResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /clubs/{clubID}/credentials [post]
func (h *ClubHandler) HandleGenerateCredentials(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "clubID")
	if !ok {
		return
	}

	creds, err := h.svc.GenerateCredentials(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClubNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("club"))

			return
		}
		if errors.Is(err, service.ErrClubEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrClubEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleGenerateCredentials -> h.svc.GenerateCredentials -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ClubCredentialsResponse{
		Club:     creds.Club,
		Email:    creds.Email,
		Password: creds.Password,
	})
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(errInvalidID))

		return 0, false
	}

	return uint(id), true
}
