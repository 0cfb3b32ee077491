package models

import (
	"github.com/google/uuid"
)

// ConversationMember associates a user with a conversation independently of any
// team membership. Used to compute the non-team subset when a conversation is
// deleted out from under users who joined on their own.
type ConversationMember struct {
	BaseModel
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;uniqueIndex:idx_conversation_members_conv_user;index" validate:"required"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_conversation_members_conv_user;index" validate:"required"`
}

// TableName returns the table name for ConversationMember
func (ConversationMember) TableName() string {
	return "conversation_members"
}
