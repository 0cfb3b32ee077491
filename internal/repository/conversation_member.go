package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConversationMemberRepository handles database operations for conversation members
type ConversationMemberRepository struct {
	db *gorm.DB
}

// NewConversationMemberRepository creates a new conversation member repository
func NewConversationMemberRepository(db *gorm.DB) *ConversationMemberRepository {
	return &ConversationMemberRepository{db: db}
}

// ListUserIDs retrieves the user IDs of all members of a conversation
func (r *ConversationMemberRepository) ListUserIDs(conversationID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ConversationMember{}).
		Where("conversation_id = ?", conversationID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Add inserts a conversation member; re-adding an existing member is a no-op
func (r *ConversationMemberRepository) Add(conversationID, userID uuid.UUID) error {
	member := models.ConversationMember{
		ConversationID: conversationID,
		UserID:         userID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&member).Error
}

// Remove deletes a conversation member
func (r *ConversationMemberRepository) Remove(conversationID, userID uuid.UUID) error {
	return r.db.Delete(&models.ConversationMember{}, "conversation_id = ? AND user_id = ?", conversationID, userID).Error
}
