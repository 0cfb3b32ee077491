package service

import (
	"context"
	"errors"
	"fmt"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/push"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamConversationResponse represents the response for team conversation operations
type TeamConversationResponse struct {
	TeamID         uuid.UUID `json:"team_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Managed        bool      `json:"managed"`
	CreatedAt      string    `json:"created_at"`
}

// TeamConversationListResponse represents the conversations of a team
type TeamConversationListResponse struct {
	Conversations []TeamConversationResponse `json:"conversations"`
}

// GetTeamConversations retrieves all conversations of a team for a caller
// holding the get-team-conversations capability
func (s *TeamService) GetTeamConversations(actor Actor, teamID uuid.UUID) (*TeamConversationListResponse, error) {
	snapshot, err := s.loadTeamSnapshot(teamID)
	if err != nil {
		return nil, err
	}
	if _, err := checkPermission(snapshot, actor.UserID, models.CapGetTeamConversations); err != nil {
		return nil, err
	}

	convs, err := s.convRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team conversations: %w", err)
	}

	responses := make([]TeamConversationResponse, len(convs))
	for i, conv := range convs {
		responses[i] = *s.conversationToResponse(&conv)
	}
	return &TeamConversationListResponse{Conversations: responses}, nil
}

// GetTeamConversation retrieves one conversation association of a team
func (s *TeamService) GetTeamConversation(actor Actor, teamID, conversationID uuid.UUID) (*TeamConversationResponse, error) {
	snapshot, err := s.loadTeamSnapshot(teamID)
	if err != nil {
		return nil, err
	}
	if _, err := checkPermission(snapshot, actor.UserID, models.CapGetTeamConversations); err != nil {
		return nil, err
	}

	conv, err := s.convRepo.Get(teamID, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamConversationNotFound
		}
		return nil, fmt.Errorf("failed to get team conversation: %w", err)
	}
	return s.conversationToResponse(conv), nil
}

// DeleteTeamConversation removes a conversation from its team. Team members
// get a team-scoped conversation-deleted event; conversation members outside
// the team get a conversation-scoped one. Both go out as one batch before the
// association is removed.
func (s *TeamService) DeleteTeamConversation(ctx context.Context, actor Actor, teamID, conversationID uuid.UUID) error {
	snapshot, err := s.loadTeamSnapshot(teamID)
	if err != nil {
		return err
	}
	if _, err := checkPermission(snapshot, actor.UserID, models.CapDeleteConversation); err != nil {
		return err
	}

	conv, err := s.convRepo.Get(teamID, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamConversationNotFound
		}
		return fmt.Errorf("failed to get team conversation: %w", err)
	}

	convMembers, err := s.convMemberRepo.ListUserIDs(conv.ConversationID)
	if err != nil {
		return fmt.Errorf("failed to load conversation members: %w", err)
	}

	notifications := []push.Notification{
		{
			Event:      push.NewTeamEvent(push.EventTeamConversationDelete, teamID, push.ConversationData{ConversationID: conversationID}),
			Recipients: teamRecipients(snapshot, &actor.UserID),
		},
		{
			Event:      push.NewConversationEvent(push.EventConversationDelete, conversationID),
			Recipients: nonTeamRecipients(convMembers, snapshot),
		},
	}
	if err := s.submit(ctx, actor, notifications); err != nil {
		return err
	}

	if err := s.convRepo.Delete(teamID, conversationID); err != nil {
		return fmt.Errorf("failed to delete team conversation: %w", err)
	}
	return nil
}

// loadTeamSnapshot verifies the team exists and loads its membership snapshot
func (s *TeamService) loadTeamSnapshot(teamID uuid.UUID) ([]models.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	snapshot, err := s.memberRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	return snapshot, nil
}

// conversationToResponse converts a team conversation model to response
func (s *TeamService) conversationToResponse(conv *models.TeamConversation) *TeamConversationResponse {
	return &TeamConversationResponse{
		TeamID:         conv.TeamID,
		ConversationID: conv.ConversationID,
		Managed:        conv.Managed,
		CreatedAt:      conv.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
