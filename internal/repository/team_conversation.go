package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamConversationRepository handles database operations for team conversations
type TeamConversationRepository struct {
	db *gorm.DB
}

// NewTeamConversationRepository creates a new team conversation repository
func NewTeamConversationRepository(db *gorm.DB) *TeamConversationRepository {
	return &TeamConversationRepository{db: db}
}

// Create creates a new team conversation association
func (r *TeamConversationRepository) Create(conv *models.TeamConversation) error {
	return r.db.Create(conv).Error
}

// Get retrieves a conversation association by team and conversation
func (r *TeamConversationRepository) Get(teamID, conversationID uuid.UUID) (*models.TeamConversation, error) {
	var conv models.TeamConversation
	err := r.db.First(&conv, "team_id = ? AND conversation_id = ?", teamID, conversationID).Error
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// ListByTeam retrieves all conversations of a team, ordered by conversation ID
func (r *TeamConversationRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamConversation, error) {
	var convs []models.TeamConversation
	err := r.db.Where("team_id = ?", teamID).Order("conversation_id").Find(&convs).Error
	if err != nil {
		return nil, err
	}
	return convs, nil
}

// Delete removes a conversation-team association
func (r *TeamConversationRepository) Delete(teamID, conversationID uuid.UUID) error {
	return r.db.Delete(&models.TeamConversation{}, "team_id = ? AND conversation_id = ?", teamID, conversationID).Error
}
