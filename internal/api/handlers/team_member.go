package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamMemberHandler handles HTTP requests for team member operations
type TeamMemberHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamMemberHandler creates a new team member handler
func NewTeamMemberHandler(teamService service.TeamServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{
		teamService: teamService,
	}
}

// AddTeamMember handles POST /teams/:id/members
// @Summary Add a team member
// @Description Add a user to a team; the granted permissions must be a subset of the caller's own
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param member body service.AddTeamMemberRequest true "Member data"
// @Success 201 {object} service.TeamMemberResponse "Successfully added member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Missing capability, escalation attempt, cap reached, or not connected"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "User is already a member"
// @Security BearerAuth
// @Router /teams/{id}/members [post]
func (h *TeamMemberHandler) AddTeamMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.AddTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamService.AddTeamMember(c.Request.Context(), actor, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember handles PATCH /teams/:id/members/:uid
// @Summary Update a team member's permissions
// @Description Replace a member's permission set; the new set must be a subset of the caller's own
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param uid path string true "User ID (UUID)"
// @Param member body service.UpdateTeamMemberRequest true "New permission set"
// @Success 200 {object} service.TeamMemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Missing capability or escalation attempt"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{uid} [patch]
func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	var req service.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamService.UpdateTeamMember(c.Request.Context(), actor, teamID, userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// RemoveTeamMember handles DELETE /teams/:id/members/:uid
// @Summary Remove a team member
// @Description Remove a member from a team and from every team conversation
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param uid path string true "User ID (UUID)"
// @Success 200 {object} nil "Successfully removed member"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 403 {object} ErrorResponse "Missing capability"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{uid} [delete]
func (h *TeamMemberHandler) RemoveTeamMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	if err := h.teamService.RemoveTeamMember(c.Request.Context(), actor, teamID, userID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GetTeamMembers handles GET /teams/:id/members
// @Summary List team members
// @Description List the members of a team the caller belongs to
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamMemberListResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/members [get]
func (h *TeamMemberHandler) GetTeamMembers(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	members, err := h.teamService.GetTeamMembers(actor, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetTeamMember handles GET /teams/:id/members/:uid
// @Summary Get a team member
// @Description Get one member of a team the caller belongs to
// @Tags team-members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param uid path string true "User ID (UUID)"
// @Success 200 {object} service.TeamMemberResponse "Successfully retrieved member"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Team or member not found"
// @Security BearerAuth
// @Router /teams/{id}/members/{uid} [get]
func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	userID, err := uuid.Parse(c.Param("uid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	member, err := h.teamService.GetTeamMember(actor, teamID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}
