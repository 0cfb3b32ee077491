//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-management-backend/internal/database/models"
	"team-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamConversationRepositoryTestSuite tests the TeamConversationRepository
type TeamConversationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamConversationRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamConversationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamConversationRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamConversationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamConversationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamConversationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeam persists a parent team for conversation rows
func (suite *TeamConversationRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	return team
}

// TestCreate tests associating a conversation with a team
func (suite *TeamConversationRepositoryTestSuite) TestCreate() {
	team := suite.createTeam()
	conv := suite.factories.TeamConversation.ForTeam(team.ID, true)

	err := suite.repo.Create(conv)

	suite.NoError(err)
	found, err := suite.repo.Get(team.ID, conv.ConversationID)
	suite.NoError(err)
	suite.True(found.Managed)
}

// TestCreateDuplicate tests that a conversation joins a team at most once
func (suite *TeamConversationRepositoryTestSuite) TestCreateDuplicate() {
	team := suite.createTeam()
	conv := suite.factories.TeamConversation.ForTeam(team.ID, false)
	suite.NoError(suite.repo.Create(conv))

	duplicate := suite.factories.TeamConversation.ForTeam(team.ID, false)
	duplicate.ConversationID = conv.ConversationID
	err := suite.repo.Create(duplicate)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetNotFound tests looking up an association that does not exist
func (suite *TeamConversationRepositoryTestSuite) TestGetNotFound() {
	team := suite.createTeam()

	found, err := suite.repo.Get(team.ID, uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestListByTeam tests listing only the team's own conversations
func (suite *TeamConversationRepositoryTestSuite) TestListByTeam() {
	team := suite.createTeam()
	other := suite.createTeam()
	suite.NoError(suite.repo.Create(suite.factories.TeamConversation.ForTeam(team.ID, true)))
	suite.NoError(suite.repo.Create(suite.factories.TeamConversation.ForTeam(team.ID, false)))
	suite.NoError(suite.repo.Create(suite.factories.TeamConversation.ForTeam(other.ID, false)))

	convs, err := suite.repo.ListByTeam(team.ID)

	suite.NoError(err)
	suite.Len(convs, 2)
	for _, conv := range convs {
		suite.Equal(team.ID, conv.TeamID)
	}
}

// TestDelete tests removing an association
func (suite *TeamConversationRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	conv := suite.factories.TeamConversation.ForTeam(team.ID, false)
	suite.NoError(suite.repo.Create(conv))

	err := suite.repo.Delete(team.ID, conv.ConversationID)

	suite.NoError(err)
	_, err = suite.repo.Get(team.ID, conv.ConversationID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestTeamConversationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamConversationRepositoryTestSuite))
}
