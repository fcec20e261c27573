package handler

import (
	"errors"
	"io"
	"strconv"

	apperrors "eventteams/internal/errors"
	"eventteams/internal/middleware"
	"eventteams/internal/models"
	"eventteams/internal/pubsub"
	"eventteams/internal/service"
	"eventteams/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamHandler handles HTTP requests for teams.
type TeamHandler struct {
	service    service.TeamServicer
	subscriber pubsub.Subscriber
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(service service.TeamServicer, subscriber pubsub.Subscriber) *TeamHandler {
	return &TeamHandler{service: service, subscriber: subscriber}
}

// pathObjectID parses an ObjectID path parameter or writes a 400.
func pathObjectID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// teamError maps coordinator errors to HTTP responses. Handlers only
// translate; every decision already happened in the service.
func teamError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound),
		errors.Is(err, apperrors.ErrTeamNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrUniqueIDNotFound),
		errors.Is(err, apperrors.ErrJoinRequestNotFound),
		errors.Is(err, apperrors.ErrNotInTeam):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrNotTeamLeader):
		response.Forbidden(c, err.Error())
	case errors.Is(err, apperrors.ErrTeamNameEmpty),
		errors.Is(err, apperrors.ErrInvalidTeamStatus),
		errors.Is(err, apperrors.ErrNotRegistered):
		response.BadRequest(c, err.Error())
	case errors.Is(err, apperrors.ErrTeamFull),
		errors.Is(err, apperrors.ErrTeamClosed),
		errors.Is(err, apperrors.ErrAlreadyInTeam),
		errors.Is(err, apperrors.ErrJoinRequestPending),
		errors.Is(err, apperrors.ErrTeamCodeExhausted),
		errors.Is(err, apperrors.ErrTeamStateChanged):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c)
	}
}

// CreateTeam godoc
// @Summary      Create a team
// @Description  Create a team for an event with the caller as leader and sole member.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  path      string                    true  "Event ID"
// @Param        body     body      models.CreateTeamRequest  true  "Team details"
// @Success      201      {object}  response.Response{data=models.Team}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /events/{eventId}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	eventID, ok := pathObjectID(c, "eventId")
	if !ok {
		return
	}

	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, eventID, &req)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Created(c, team)
}

// ListOpenTeams godoc
// @Summary      List joinable teams
// @Description  Paginated summaries of open teams with free seats for an event.
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  path      string  true   "Event ID"
// @Param        page     query     int     false  "Page number"
// @Param        limit    query     int     false  "Page size (max 50)"
// @Success      200      {object}  response.Response{data=models.TeamListResponse}
// @Failure      404      {object}  response.Response
// @Router       /events/{eventId}/teams [get]
func (h *TeamHandler) ListOpenTeams(c *gin.Context) {
	eventID, ok := pathObjectID(c, "eventId")
	if !ok {
		return
	}

	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", 20)

	result, err := h.service.ListOpenTeams(c.Request.Context(), eventID, page, limit)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, result)
}

// GetTeam godoc
// @Summary      Get a team
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string  true  "Team ID"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      404     {object}  response.Response
// @Router       /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, team)
}

// GetMyTeam godoc
// @Summary      Get the caller's team for an event
// @Tags         teams
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  path      string  true  "Event ID"
// @Success      200      {object}  response.Response{data=models.Team}
// @Failure      404      {object}  response.Response
// @Router       /events/{eventId}/teams/mine [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	userID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	eventID, ok := pathObjectID(c, "eventId")
	if !ok {
		return
	}

	team, err := h.service.GetUserTeam(c.Request.Context(), eventID, userID)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, team)
}

// RenameTeam godoc
// @Summary      Rename a team
// @Description  Update the team display name. Leader only. The team code never changes.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string                    true  "Team ID"
// @Param        body    body      models.RenameTeamRequest  true  "New name"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /teams/{teamId}/name [put]
func (h *TeamHandler) RenameTeam(c *gin.Context) {
	userID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}

	var req models.RenameTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.RenameTeam(c.Request.Context(), userID, teamID, req.Name)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, team)
}

// UpdateStatus godoc
// @Summary      Set team status
// @Description  Toggle the open/closed flag shown in listings. Leader only.
// @Tags         teams
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string                          true  "Team ID"
// @Param        body    body      models.UpdateTeamStatusRequest  true  "New status"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /teams/{teamId}/status [put]
func (h *TeamHandler) UpdateStatus(c *gin.Context) {
	userID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}

	var req models.UpdateTeamStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.SetTeamStatus(c.Request.Context(), userID, teamID, req.Status)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, team)
}

// StreamTeamEvents godoc
// @Summary      Stream team updates for an event
// @Description  Server-sent events feed of team mutations (creations, renames, membership changes).
// @Tags         teams
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        eventId  path  string  true  "Event ID"
// @Success      200
// @Failure      400  {object}  response.Response
// @Router       /events/{eventId}/teams/stream [get]
func (h *TeamHandler) StreamTeamEvents(c *gin.Context) {
	eventID, ok := pathObjectID(c, "eventId")
	if !ok {
		return
	}

	events, cancel, err := h.subscriber.Subscribe(c.Request.Context(), eventID.Hex())
	if err != nil {
		response.InternalError(c)
		return
	}
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, open := <-events:
			if !open {
				return false
			}
			c.SSEvent(ev.Type, ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

func parseIntQuery(c *gin.Context, name string, def int) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return n
}
