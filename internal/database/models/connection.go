package models

import (
	"github.com/google/uuid"
)

// ConnectionStatus represents the state of a user-to-user connection
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
	ConnectionStatusBlocked  ConnectionStatus = "blocked"
)

// Connection is a directed edge between two users. Two users are mutually
// connected when both directions exist with accepted status.
type Connection struct {
	BaseModel
	FromUserID uuid.UUID        `json:"from_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_connections_from_to;index" validate:"required"`
	ToUserID   uuid.UUID        `json:"to_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_connections_from_to;index" validate:"required"`
	Status     ConnectionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
}

// TableName returns the table name for Connection
func (Connection) TableName() string {
	return "connections"
}
