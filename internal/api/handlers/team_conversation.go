package handlers

import (
	"net/http"

	"team-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamConversationHandler handles HTTP requests for team conversation operations
type TeamConversationHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamConversationHandler creates a new team conversation handler
func NewTeamConversationHandler(teamService service.TeamServiceInterface) *TeamConversationHandler {
	return &TeamConversationHandler{
		teamService: teamService,
	}
}

// GetTeamConversations handles GET /teams/:id/conversations
// @Summary List team conversations
// @Description List the conversations of a team; requires the get-team-conversations capability
// @Tags team-conversations
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamConversationListResponse "Successfully retrieved conversations"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 403 {object} ErrorResponse "Missing capability"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/conversations [get]
func (h *TeamConversationHandler) GetTeamConversations(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	convs, err := h.teamService.GetTeamConversations(actor, teamID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, convs)
}

// GetTeamConversation handles GET /teams/:id/conversations/:cid
// @Summary Get a team conversation
// @Description Get one conversation association of a team
// @Tags team-conversations
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param cid path string true "Conversation ID (UUID)"
// @Success 200 {object} service.TeamConversationResponse "Successfully retrieved conversation"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 403 {object} ErrorResponse "Missing capability"
// @Failure 404 {object} ErrorResponse "Team or conversation not found"
// @Security BearerAuth
// @Router /teams/{id}/conversations/{cid} [get]
func (h *TeamConversationHandler) GetTeamConversation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	conversationID, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
		return
	}

	conv, err := h.teamService.GetTeamConversation(actor, teamID, conversationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

// DeleteTeamConversation handles DELETE /teams/:id/conversations/:cid
// @Summary Delete a team conversation
// @Description Remove a conversation from its team; requires the delete-conversation capability
// @Tags team-conversations
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param cid path string true "Conversation ID (UUID)"
// @Success 200 {object} nil "Successfully deleted conversation"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 403 {object} ErrorResponse "Missing capability"
// @Failure 404 {object} ErrorResponse "Team or conversation not found"
// @Security BearerAuth
// @Router /teams/{id}/conversations/{cid} [delete]
func (h *TeamConversationHandler) DeleteTeamConversation(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	teamID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}
	conversationID, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
		return
	}

	if err := h.teamService.DeleteTeamConversation(c.Request.Context(), actor, teamID, conversationID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
