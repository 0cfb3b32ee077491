package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, actor Actor, req *CreateTeamRequest) (*TeamResponse, error)
	GetTeam(actor Actor, teamID uuid.UUID) (*TeamResponse, error)
	ListTeams(actor Actor, selector TeamSelector, pageSize int) (*TeamListResponse, error)
	UpdateTeam(ctx context.Context, actor Actor, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	DeleteTeam(ctx context.Context, actor Actor, teamID uuid.UUID) error

	AddTeamMember(ctx context.Context, actor Actor, teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error)
	UpdateTeamMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error)
	RemoveTeamMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID) error
	GetTeamMembers(actor Actor, teamID uuid.UUID) (*TeamMemberListResponse, error)
	GetTeamMember(actor Actor, teamID, userID uuid.UUID) (*TeamMemberResponse, error)

	GetTeamConversations(actor Actor, teamID uuid.UUID) (*TeamConversationListResponse, error)
	GetTeamConversation(actor Actor, teamID, conversationID uuid.UUID) (*TeamConversationResponse, error)
	DeleteTeamConversation(ctx context.Context, actor Actor, teamID, conversationID uuid.UUID) error
}
