package service

import (
	"context"
	"errors"
	"fmt"

	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/logger"
	"team-management-backend/internal/push"
	"team-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxTeamMembers is the hard cap on team size, checked before every member add
const maxTeamMembers = 128

// Actor identifies the user a request acts as and the connection it arrived on.
// The connection is only used to let delivery suppress the echo to the acting
// device; it plays no part in authorization.
type Actor struct {
	UserID     uuid.UUID
	Connection string
}

// TeamService handles business logic for teams, their members and their
// conversations. Every mutating operation loads a membership snapshot, checks
// permission against it, performs the store mutations, and submits the
// resulting events to the delivery collaborator before the destructive step
// where one exists.
type TeamService struct {
	teamRepo       repository.TeamRepositoryInterface
	memberRepo     repository.TeamMemberRepositoryInterface
	convRepo       repository.TeamConversationRepositoryInterface
	convMemberRepo repository.ConversationMemberRepositoryInterface
	connectivity   ConnectivityChecker
	pusher         push.Pusher
	validator      *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	teamRepo repository.TeamRepositoryInterface,
	memberRepo repository.TeamMemberRepositoryInterface,
	convRepo repository.TeamConversationRepositoryInterface,
	convMemberRepo repository.ConversationMemberRepositoryInterface,
	connectivity ConnectivityChecker,
	pusher push.Pusher,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		memberRepo:     memberRepo,
		convRepo:       convRepo,
		convMemberRepo: convMemberRepo,
		connectivity:   connectivity,
		pusher:         pusher,
		validator:      validator,
	}
}

// NewTeamMember describes one initial member of a team being created
type NewTeamMember struct {
	UserID      uuid.UUID            `json:"user_id" validate:"required"`
	Permissions models.PermissionSet `json:"permissions"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name    string          `json:"name" validate:"required,min=1,max=256"`
	Icon    string          `json:"icon" validate:"max=256"`
	IconKey string          `json:"icon_key" validate:"max=256"`
	Members []NewTeamMember `json:"members" validate:"max=127,dive"`
}

// UpdateTeamRequest represents the request to update a team. Nil fields are
// left untouched.
type UpdateTeamRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=256"`
	Icon    *string `json:"icon,omitempty" validate:"omitempty,max=256"`
	IconKey *string `json:"icon_key,omitempty" validate:"omitempty,max=256"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	IconKey   string    `json:"icon_key,omitempty"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// TeamListResponse represents one page of the caller's teams
type TeamListResponse struct {
	Teams   []TeamResponse `json:"teams"`
	HasMore bool           `json:"has_more"`
}

// CreateTeam creates a team with the caller as owner plus the listed initial
// members. The caller must be mutually connected to every listed member; the
// owner entry always holds the full permission set.
func (s *TeamService) CreateTeam(ctx context.Context, actor Actor, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Drop a self-entry and duplicates from the initial roster.
	roster := make([]NewTeamMember, 0, len(req.Members))
	seen := map[uuid.UUID]struct{}{actor.UserID: {}}
	for _, m := range req.Members {
		if _, dup := seen[m.UserID]; dup {
			continue
		}
		if err := m.Permissions.Validate(); err != nil {
			return nil, apperrors.NewValidationError("members", err.Error())
		}
		seen[m.UserID] = struct{}{}
		roster = append(roster, m)
	}

	otherIDs := make([]uuid.UUID, len(roster))
	for i, m := range roster {
		otherIDs[i] = m.UserID
	}
	if err := s.connectivity.EnsureConnected(actor.UserID, otherIDs); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:    req.Name,
		Icon:    req.Icon,
		IconKey: req.IconKey,
		Alive:   true,
	}
	if err := s.teamRepo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	members := make([]models.TeamMember, 0, len(roster)+1)
	members = append(members, models.TeamMember{
		TeamID:      team.ID,
		UserID:      actor.UserID,
		Permissions: models.FullPermissions(),
	})
	for _, m := range roster {
		createdBy := actor.UserID
		members = append(members, models.TeamMember{
			TeamID:      team.ID,
			UserID:      m.UserID,
			Permissions: m.Permissions.Normalize(),
			CreatedBy:   &createdBy,
		})
	}
	if err := s.memberRepo.CreateMany(members); err != nil {
		return nil, fmt.Errorf("failed to create team members: %w", err)
	}

	// Creation broadcasts to the full roster, owner included; the exclusion
	// rule is unnecessary here since the actor is the owner entry.
	event := push.NewTeamEvent(push.EventTeamCreate, team.ID, nil)
	err := s.submit(ctx, actor, []push.Notification{
		{Event: event, Recipients: teamRecipients(members, nil)},
	})
	if err != nil {
		return nil, err
	}

	logger.ForUser(actor.UserID).WithField("team_id", team.ID).Infof("Created team with %d members", len(members))

	return s.toResponse(team), nil
}

// GetTeam retrieves a team the caller belongs to
func (s *TeamService) GetTeam(actor Actor, teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	snapshot, err := s.memberRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	if _, err := requireMembership(snapshot, actor.UserID); err != nil {
		return nil, err
	}

	return s.toResponse(team), nil
}

// ListTeams resolves a listing selector into one page of the caller's teams
func (s *TeamService) ListTeams(actor Actor, selector TeamSelector, pageSize int) (*TeamListResponse, error) {
	ids, hasMore, err := s.resolveTeamPage(actor.UserID, selector, pageSize)
	if err != nil {
		return nil, err
	}

	teams := []models.Team{}
	if len(ids) > 0 {
		teams, err = s.teamRepo.GetMany(ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load teams: %w", err)
		}
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team)
	}

	return &TeamListResponse{
		Teams:   responses,
		HasMore: hasMore,
	}, nil
}

// UpdateTeam applies an update payload to a team the caller may administer
func (s *TeamService) UpdateTeam(ctx context.Context, actor Actor, teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.teamRepo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	snapshot, err := s.memberRepo.ListByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load team members: %w", err)
	}
	if _, err := checkPermission(snapshot, actor.UserID, models.CapSetTeamData); err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Icon != nil {
		team.Icon = *req.Icon
	}
	if req.IconKey != nil {
		team.IconKey = *req.IconKey
	}
	if err := s.teamRepo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	event := push.NewTeamEvent(push.EventTeamUpdate, team.ID, nil)
	err = s.submit(ctx, actor, []push.Notification{
		{Event: event, Recipients: teamRecipients(snapshot, &actor.UserID)},
	})
	if err != nil {
		return nil, err
	}

	return s.toResponse(team), nil
}

// DeleteTeam deletes a team and cascades over its conversations. Every
// unmanaged conversation with members outside the team produces a
// conversation-deleted event for those external members, batched with the
// team-deleted broadcast. The permission check is skipped when the team is
// already marked not-alive so an interrupted delete can be re-entered.
// Notifications are composed and submitted before the destructive store step.
func (s *TeamService) DeleteTeam(ctx context.Context, actor Actor, teamID uuid.UUID) error {
	alive, err := s.teamRepo.IsAlive(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	snapshot, err := s.memberRepo.ListByTeam(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team members: %w", err)
	}
	if alive {
		if _, err := checkPermission(snapshot, actor.UserID, models.CapDeleteTeam); err != nil {
			return err
		}
		if err := s.teamRepo.SetAlive(teamID, false); err != nil {
			return fmt.Errorf("failed to mark team for deletion: %w", err)
		}
	}

	convs, err := s.convRepo.ListByTeam(teamID)
	if err != nil {
		return fmt.Errorf("failed to load team conversations: %w", err)
	}

	notifications := make([]push.Notification, 0, len(convs)+1)
	for _, conv := range convs {
		// Managed conversations have no life outside the team; no separate
		// event is owed for them.
		if conv.Managed {
			continue
		}
		convMembers, err := s.convMemberRepo.ListUserIDs(conv.ConversationID)
		if err != nil {
			return fmt.Errorf("failed to load conversation members: %w", err)
		}
		external := nonTeamRecipients(convMembers, snapshot)
		if len(external) == 0 {
			continue
		}
		notifications = append(notifications, push.Notification{
			Event:      push.NewConversationEvent(push.EventConversationDelete, conv.ConversationID),
			Recipients: external,
		})
	}
	notifications = append(notifications, push.Notification{
		Event:      push.NewTeamEvent(push.EventTeamDelete, teamID, nil),
		Recipients: teamRecipients(snapshot, &actor.UserID),
	})

	if err := s.submit(ctx, actor, notifications); err != nil {
		return err
	}

	if err := s.teamRepo.Delete(teamID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	logger.ForUser(actor.UserID).WithField("team_id", teamID).Info("Deleted team")
	return nil
}

// toResponse converts a team model to response
func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		Icon:      team.Icon,
		IconKey:   team.IconKey,
		CreatedAt: team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
