package handler

import (
	"eventteams/internal/middleware"
	"eventteams/internal/models"
	"eventteams/internal/service"
	"eventteams/pkg/response"

	"github.com/gin-gonic/gin"
)

// JoinRequestHandler handles HTTP requests for the join workflow.
type JoinRequestHandler struct {
	service service.TeamServicer
}

// NewJoinRequestHandler creates a new JoinRequestHandler.
func NewJoinRequestHandler(service service.TeamServicer) *JoinRequestHandler {
	return &JoinRequestHandler{service: service}
}

// RequestJoin godoc
// @Summary      Request to join a team
// @Description  Queue the caller on a team's pending list. At most one outstanding request per event.
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string  true  "Team ID"
// @Success      201     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /teams/{teamId}/requests [post]
func (h *JoinRequestHandler) RequestJoin(c *gin.Context) {
	userID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}

	if err := h.service.RequestJoin(c.Request.Context(), userID, teamID); err != nil {
		teamError(c, err)
		return
	}

	response.Created(c, gin.H{"message": "join request submitted"})
}

// ApproveRequest godoc
// @Summary      Approve a join request
// @Description  Move a pending requester into the member list. Leader only.
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string  true  "Team ID"
// @Param        uid     path      string  true  "Requesting user ID"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /teams/{teamId}/requests/{uid}/approve [post]
func (h *JoinRequestHandler) ApproveRequest(c *gin.Context) {
	callerID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}
	uid, ok := pathObjectID(c, "uid")
	if !ok {
		return
	}

	team, err := h.service.ApproveRequest(c.Request.Context(), callerID, teamID, uid)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, team)
}

// RejectRequest godoc
// @Summary      Reject a join request
// @Description  Remove a pending request without adding the requester. Leader only.
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string  true  "Team ID"
// @Param        uid     path      string  true  "Requesting user ID"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /teams/{teamId}/requests/{uid} [delete]
func (h *JoinRequestHandler) RejectRequest(c *gin.Context) {
	callerID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}
	uid, ok := pathObjectID(c, "uid")
	if !ok {
		return
	}

	if err := h.service.RejectRequest(c.Request.Context(), callerID, teamID, uid); err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, gin.H{"message": "join request rejected"})
}

// AddMember godoc
// @Summary      Add a member directly
// @Description  Add a registered participant by their unique ID, skipping the request handshake. Leader only.
// @Tags         join-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        teamId  path      string                   true  "Team ID"
// @Param        body    body      models.AddMemberRequest  true  "Participant unique ID"
// @Success      200     {object}  response.Response{data=models.Team}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /teams/{teamId}/members [post]
func (h *JoinRequestHandler) AddMember(c *gin.Context) {
	callerID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	teamID, ok := pathObjectID(c, "teamId")
	if !ok {
		return
	}

	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	team, err := h.service.AddMemberDirect(c.Request.Context(), callerID, teamID, req.UniqueID)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, team)
}

// GetMyRequest godoc
// @Summary      Get the caller's outstanding join request for an event
// @Tags         join-requests
// @Produce      json
// @Security     BearerAuth
// @Param        eventId  path      string  true  "Event ID"
// @Success      200      {object}  response.Response{data=models.JoinRequest}
// @Failure      404      {object}  response.Response
// @Router       /events/{eventId}/requests/mine [get]
func (h *JoinRequestHandler) GetMyRequest(c *gin.Context) {
	userID, ok := middleware.CallerObjectID(c)
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return
	}

	eventID, ok := pathObjectID(c, "eventId")
	if !ok {
		return
	}

	request, err := h.service.GetUserJoinRequest(c.Request.Context(), eventID, userID)
	if err != nil {
		teamError(c, err)
		return
	}

	response.Success(c, request)
}
