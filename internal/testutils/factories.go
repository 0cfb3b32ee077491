package testutils

import (
	"time"

	"team-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient test setup
type FactorySet struct {
	Team               *TeamFactory
	TeamMember         *TeamMemberFactory
	TeamConversation   *TeamConversationFactory
	ConversationMember *ConversationMemberFactory
	Connection         *ConnectionFactory
}

// NewFactorySet creates a FactorySet containing every factory
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:               NewTeamFactory(),
		TeamMember:         NewTeamMemberFactory(),
		TeamConversation:   NewTeamConversationFactory(),
		ConversationMember: NewConversationMemberFactory(),
		Connection:         NewConnectionFactory(),
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "Test Team",
		Icon:    "https://cdn.test.com/icons/team.png",
		IconKey: "icons/team.png",
		Alive:   true,
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// NotAlive creates a team already marked for deletion
func (f *TeamFactory) NotAlive() *models.Team {
	team := f.Create()
	team.Alive = false
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create() *models.TeamMember {
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:      uuid.New(),
		UserID:      uuid.New(),
		Permissions: models.PermissionSet{},
	}
}

// Owner creates a member holding the full permission set
func (f *TeamMemberFactory) Owner(teamID, userID uuid.UUID) *models.TeamMember {
	member := f.Create()
	member.TeamID = teamID
	member.UserID = userID
	member.Permissions = models.FullPermissions()
	return member
}

// WithPermissions creates a member of the given team holding the given capabilities
func (f *TeamMemberFactory) WithPermissions(teamID, userID uuid.UUID, permissions models.PermissionSet) *models.TeamMember {
	member := f.Create()
	member.TeamID = teamID
	member.UserID = userID
	member.Permissions = permissions
	return member
}

// TeamConversationFactory provides methods to create test TeamConversation data
type TeamConversationFactory struct{}

// NewTeamConversationFactory creates a new TeamConversationFactory
func NewTeamConversationFactory() *TeamConversationFactory {
	return &TeamConversationFactory{}
}

// Create creates a test TeamConversation with default values
func (f *TeamConversationFactory) Create() *models.TeamConversation {
	return &models.TeamConversation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:         uuid.New(),
		ConversationID: uuid.New(),
		Managed:        false,
	}
}

// ForTeam creates a conversation belonging to the given team
func (f *TeamConversationFactory) ForTeam(teamID uuid.UUID, managed bool) *models.TeamConversation {
	conv := f.Create()
	conv.TeamID = teamID
	conv.Managed = managed
	return conv
}

// ConversationMemberFactory provides methods to create test ConversationMember data
type ConversationMemberFactory struct{}

// NewConversationMemberFactory creates a new ConversationMemberFactory
func NewConversationMemberFactory() *ConversationMemberFactory {
	return &ConversationMemberFactory{}
}

// Create creates a test ConversationMember with default values
func (f *ConversationMemberFactory) Create() *models.ConversationMember {
	return &models.ConversationMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ConversationID: uuid.New(),
		UserID:         uuid.New(),
	}
}

// For creates a membership of the given user in the given conversation
func (f *ConversationMemberFactory) For(conversationID, userID uuid.UUID) *models.ConversationMember {
	member := f.Create()
	member.ConversationID = conversationID
	member.UserID = userID
	return member
}

// ConnectionFactory provides methods to create test Connection data
type ConnectionFactory struct{}

// NewConnectionFactory creates a new ConnectionFactory
func NewConnectionFactory() *ConnectionFactory {
	return &ConnectionFactory{}
}

// Create creates a test Connection with default values
func (f *ConnectionFactory) Create() *models.Connection {
	return &models.Connection{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FromUserID: uuid.New(),
		ToUserID:   uuid.New(),
		Status:     models.ConnectionStatusAccepted,
	}
}

// Accepted creates one accepted directed edge between two users
func (f *ConnectionFactory) Accepted(from, to uuid.UUID) *models.Connection {
	conn := f.Create()
	conn.FromUserID = from
	conn.ToUserID = to
	return conn
}

// Mutual creates both directed accepted edges between two users
func (f *ConnectionFactory) Mutual(a, b uuid.UUID) []*models.Connection {
	return []*models.Connection{
		f.Accepted(a, b),
		f.Accepted(b, a),
	}
}
