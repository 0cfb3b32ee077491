package repository

import (
	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetMany(ids []uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	SetAlive(id uuid.UUID, alive bool) error
	IsAlive(id uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
	ListIDsForUser(userID uuid.UUID, afterID *uuid.UUID, limit int) ([]uuid.UUID, bool, error)
	ListIDsForUserAmong(userID uuid.UUID, teamIDs []uuid.UUID) ([]uuid.UUID, error)
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	CreateMany(members []models.TeamMember) error
	Get(teamID, userID uuid.UUID) (*models.TeamMember, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamMember, error)
	UpdatePermissions(teamID, userID uuid.UUID, permissions models.PermissionSet) error
	Delete(teamID, userID uuid.UUID) error
}

// TeamConversationRepositoryInterface defines the interface for team conversation repository operations
type TeamConversationRepositoryInterface interface {
	Create(conv *models.TeamConversation) error
	Get(teamID, conversationID uuid.UUID) (*models.TeamConversation, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamConversation, error)
	Delete(teamID, conversationID uuid.UUID) error
}

// ConversationMemberRepositoryInterface defines the interface for conversation member repository operations
type ConversationMemberRepositoryInterface interface {
	ListUserIDs(conversationID uuid.UUID) ([]uuid.UUID, error)
	Add(conversationID, userID uuid.UUID) error
	Remove(conversationID, userID uuid.UUID) error
}

// ConnectionRepositoryInterface defines the interface for connection repository operations
type ConnectionRepositoryInterface interface {
	CountAcceptedFrom(userID uuid.UUID, others []uuid.UUID) (int64, error)
	CountAcceptedTo(userID uuid.UUID, others []uuid.UUID) (int64, error)
	Create(conn *models.Connection) error
}
