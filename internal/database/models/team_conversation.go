package models

import (
	"github.com/google/uuid"
)

// TeamConversation associates a conversation with a team. Managed conversations
// keep their membership in sync with team membership (auto-join on member add,
// auto-leave on member removal); unmanaged conversations are joined
// independently.
type TeamConversation struct {
	BaseModel
	TeamID         uuid.UUID `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_conversations_team_conv;index" validate:"required"`
	ConversationID uuid.UUID `json:"conversation_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_conversations_team_conv" validate:"required"`
	Managed        bool      `json:"managed" gorm:"not null;default:false"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamConversation
func (TeamConversation) TableName() string {
	return "team_conversations"
}
