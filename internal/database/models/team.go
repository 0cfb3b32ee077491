package models

// Team represents a named group entity owning members and conversations
type Team struct {
	BaseModel
	Name    string `json:"name" gorm:"not null;size:256" validate:"required,min=1,max=256"`
	Icon    string `json:"icon" gorm:"size:256"`
	IconKey string `json:"icon_key" gorm:"size:256"`
	// Alive is cleared when deletion starts; the record is removed last so
	// cleanup can be re-entered if a delete is interrupted.
	Alive bool `json:"alive" gorm:"not null;default:true"`

	// Relationships
	Members       []TeamMember       `json:"members,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Conversations []TeamConversation `json:"conversations,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
