package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 100
	maxPageSize     = 100
	maxExplicitIDs  = 32
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a team with the caller as owner plus the listed initial members
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller not connected to a listed member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), actor, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams
// @Summary List the caller's teams
// @Description Page through the caller's teams by cursor, or resolve an explicit ID set
// @Tags teams
// @Accept json
// @Produce json
// @Param size query int false "Page size" default(100)
// @Param start query string false "Team ID (UUID) to continue after"
// @Param ids query string false "Comma-separated team IDs (max 32), mutually exclusive with start"
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	selector, pageSize, ok := parseTeamSelector(c)
	if !ok {
		return
	}

	teams, err := h.teamService.ListTeams(actor, selector, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a team the caller belongs to
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Caller is not a team member"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.teamService.GetTeam(actor, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PATCH /teams/:id
// @Summary Update a team
// @Description Apply an update payload to a team; requires the set-team-data capability
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Update payload"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Missing capability"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), actor, teamID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team and cascade over its conversations; requires the delete-team capability
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} nil "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Missing capability"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.DeleteTeam(c.Request.Context(), actor, teamID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// parseTeamSelector parses the listing query parameters. The cursor and the
// explicit ID set are mutually exclusive; page size is bounded to [1,100] and
// the ID set to [1,32]. Writes the 400 response itself on failure.
func parseTeamSelector(c *gin.Context) (service.TeamSelector, int, bool) {
	var selector service.TeamSelector

	startStr := c.Query("start")
	idsStr := c.Query("ids")
	if startStr != "" && idsStr != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and ids are mutually exclusive"})
		return selector, 0, false
	}

	if startStr != "" {
		afterID, err := uuid.Parse(startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start cursor"})
			return selector, 0, false
		}
		selector.AfterID = &afterID
	}

	if idsStr != "" {
		parts := strings.Split(idsStr, ",")
		if len(parts) > maxExplicitIDs {
			c.JSON(http.StatusBadRequest, gin.H{"error": "too many team IDs requested"})
			return selector, 0, false
		}
		ids := make([]uuid.UUID, 0, len(parts))
		for _, part := range parts {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID in ids"})
				return selector, 0, false
			}
			ids = append(ids, id)
		}
		selector.IDs = ids
	}

	pageSize := defaultPageSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > maxPageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be between 1 and 100"})
			return selector, 0, false
		}
		pageSize = size
	}

	return selector, pageSize, true
}
