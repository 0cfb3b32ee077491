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

// AddTeamMemberRequest represents the request to add a member to a team
type AddTeamMemberRequest struct {
	UserID      uuid.UUID            `json:"user_id" validate:"required"`
	Permissions models.PermissionSet `json:"permissions"`
}

// UpdateTeamMemberRequest represents the request to replace a member's
// permission set
type UpdateTeamMemberRequest struct {
	Permissions models.PermissionSet `json:"permissions" validate:"required"`
}

// TeamMemberResponse represents the response for team member operations.
// Permissions and the granting member are only populated when the caller may
// see them.
type TeamMemberResponse struct {
	TeamID      uuid.UUID            `json:"team_id"`
	UserID      uuid.UUID            `json:"user_id"`
	Permissions models.PermissionSet `json:"permissions,omitempty"`
	CreatedBy   *uuid.UUID           `json:"created_by,omitempty"`
	CreatedAt   string               `json:"created_at"`
	UpdatedAt   string               `json:"updated_at"`
}

// TeamMemberListResponse represents the members of a team
type TeamMemberListResponse struct {
	Members []TeamMemberResponse `json:"members"`
}

// AddTeamMember adds a user to a team. The granted permission set must be a
// subset of the caller's own set, the team must be below the member cap, and
// the caller must be mutually connected to the new member. Managed team
// conversations pick the new member up automatically.
func (s *TeamService) AddTeamMember(ctx context.Context, actor Actor, teamID uuid.UUID, req *AddTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := req.Permissions.Validate(); err != nil {
		return nil, apperrors.NewValidationError("permissions", err.Error())
	}

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
	granter, err := checkPermission(snapshot, actor.UserID, models.CapAddTeamMember)
	if err != nil {
		return nil, err
	}
	// A member can only grant a subset of their own permission set; which
	// capability exceeds it does not change the error.
	if !req.Permissions.IsSubsetOf(granter.Permissions) {
		return nil, apperrors.ErrInvalidPermissions
	}
	if len(snapshot) >= maxTeamMembers {
		return nil, apperrors.ErrTooManyMembers
	}
	if findMember(snapshot, req.UserID) != nil {
		return nil, apperrors.ErrTeamMemberExists
	}

	if err := s.connectivity.EnsureConnected(actor.UserID, []uuid.UUID{req.UserID}); err != nil {
		return nil, err
	}

	createdBy := actor.UserID
	member := &models.TeamMember{
		TeamID:      teamID,
		UserID:      req.UserID,
		Permissions: req.Permissions.Normalize(),
		CreatedBy:   &createdBy,
	}
	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	convs, err := s.convRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team conversations: %w", err)
	}
	for _, conv := range convs {
		if !conv.Managed {
			continue
		}
		if err := s.convMemberRepo.Add(conv.ConversationID, req.UserID); err != nil {
			return nil, fmt.Errorf("failed to add member to managed conversation: %w", err)
		}
	}

	// Broadcast to the post-mutation roster (old members plus the new one),
	// excluding the actor.
	roster := append(append([]models.TeamMember{}, snapshot...), *member)
	event := push.NewTeamEvent(push.EventTeamMemberJoin, teamID, push.MemberData{UserID: req.UserID})
	err = s.submit(ctx, actor, []push.Notification{
		{Event: event, Recipients: teamRecipients(roster, &actor.UserID)},
	})
	if err != nil {
		return nil, err
	}

	return s.memberToResponse(member, true), nil
}

// UpdateTeamMember replaces the permission set of an existing member. The new
// set must be a subset of the caller's own set, independent of the target's
// prior state.
func (s *TeamService) UpdateTeamMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID, req *UpdateTeamMemberRequest) (*TeamMemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := req.Permissions.Validate(); err != nil {
		return nil, apperrors.NewValidationError("permissions", err.Error())
	}

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
	granter, err := checkPermission(snapshot, actor.UserID, models.CapSetMemberPermissions)
	if err != nil {
		return nil, err
	}
	if !req.Permissions.IsSubsetOf(granter.Permissions) {
		return nil, apperrors.ErrInvalidPermissions
	}

	target := findMember(snapshot, userID)
	if target == nil {
		return nil, apperrors.ErrTeamMemberNotFound
	}

	permissions := req.Permissions.Normalize()
	if err := s.memberRepo.UpdatePermissions(teamID, userID, permissions); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	event := push.NewTeamEvent(push.EventTeamMemberUpdate, teamID, push.MemberData{UserID: userID})
	err = s.submit(ctx, actor, []push.Notification{
		{Event: event, Recipients: teamRecipients(snapshot, &actor.UserID)},
	})
	if err != nil {
		return nil, err
	}

	updated := *target
	updated.Permissions = permissions
	return s.memberToResponse(&updated, true), nil
}

// RemoveTeamMember removes a member from a team and from every team
// conversation. The leave event is composed and submitted against the
// pre-removal snapshot, before the removal is committed, so the removed member
// still receives their own removal notice.
func (s *TeamService) RemoveTeamMember(ctx context.Context, actor Actor, teamID, userID uuid.UUID) error {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	snapshot, err := s.memberRepo.ListByTeam(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}
	if _, err := checkPermission(snapshot, actor.UserID, models.CapRemoveTeamMember); err != nil {
		return err
	}
	if findMember(snapshot, userID) == nil {
		return apperrors.ErrTeamMemberNotFound
	}

	event := push.NewTeamEvent(push.EventTeamMemberLeave, teamID, push.MemberData{UserID: userID})
	err = s.submit(ctx, actor, []push.Notification{
		{Event: event, Recipients: teamRecipients(snapshot, &actor.UserID)},
	})
	if err != nil {
		return err
	}

	if err := s.memberRepo.Delete(teamID, userID); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	convs, err := s.convRepo.ListByTeam(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team conversations: %w", err)
	}
	for _, conv := range convs {
		if err := s.convMemberRepo.Remove(conv.ConversationID, userID); err != nil {
			return fmt.Errorf("failed to remove member from conversation: %w", err)
		}
	}
	return nil
}

// GetTeamMembers retrieves all members of a team the caller belongs to.
// Other members' granted permission details are visible only to holders of the
// get-member-permissions capability; a member always sees their own.
func (s *TeamService) GetTeamMembers(actor Actor, teamID uuid.UUID) (*TeamMemberListResponse, error) {
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
	caller, err := requireMembership(snapshot, actor.UserID)
	if err != nil {
		return nil, err
	}
	canSeePermissions := caller.Permissions.Contains(models.CapGetMemberPermissions)

	responses := make([]TeamMemberResponse, len(snapshot))
	for i := range snapshot {
		visible := canSeePermissions || snapshot[i].UserID == actor.UserID
		responses[i] = *s.memberToResponse(&snapshot[i], visible)
	}
	return &TeamMemberListResponse{Members: responses}, nil
}

// GetTeamMember retrieves one member of a team the caller belongs to, with the
// same permission-visibility gating as GetTeamMembers
func (s *TeamService) GetTeamMember(actor Actor, teamID, userID uuid.UUID) (*TeamMemberResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	caller, err := s.memberRepo.Get(teamID, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoTeamMember
		}
		return nil, fmt.Errorf("failed to load team member: %w", err)
	}

	target, err := s.memberRepo.Get(teamID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("failed to load team member: %w", err)
	}

	visible := caller.Permissions.Contains(models.CapGetMemberPermissions) || userID == actor.UserID
	return s.memberToResponse(target, visible), nil
}

// memberToResponse converts a member model to response, dropping the
// permission details unless the caller may see them
func (s *TeamService) memberToResponse(member *models.TeamMember, showPermissions bool) *TeamMemberResponse {
	resp := &TeamMemberResponse{
		TeamID:    member.TeamID,
		UserID:    member.UserID,
		CreatedAt: member.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: member.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if showPermissions {
		resp.Permissions = member.Permissions
		resp.CreatedBy = member.CreatedBy
	}
	return resp
}
