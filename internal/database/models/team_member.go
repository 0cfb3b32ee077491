package models

import (
	"github.com/google/uuid"
)

// TeamMember associates a user with a team plus a capability set
type TeamMember struct {
	BaseModel
	TeamID      uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user;index" validate:"required"`
	UserID      uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_team_user;index" validate:"required"`
	Permissions PermissionSet `json:"permissions" gorm:"type:jsonb;not null"`
	// CreatedBy records which member granted the membership; nil for the owner
	// entry written at team creation.
	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
