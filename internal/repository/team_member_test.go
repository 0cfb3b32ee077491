//go:build integration
// +build integration

package repository

import (
	"fmt"
	"testing"

	"team-management-backend/internal/database/models"
	"team-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	teamRepo      *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeam persists a parent team for membership rows
func (suite *TeamMemberRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.NoError(suite.teamRepo.Create(team))
	return team
}

// userIDAt builds a fixed UUID so user ordering stays deterministic
func userIDAt(seq int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", seq))
}

// TestCreate tests creating a team member with a granter reference
func (suite *TeamMemberRepositoryTestSuite) TestCreate() {
	team := suite.createTeam()
	granter := uuid.New()
	member := suite.factories.TeamMember.WithPermissions(team.ID, uuid.New(),
		models.PermissionSet{models.CapCreateConversation})
	member.CreatedBy = &granter

	err := suite.repo.Create(member)

	suite.NoError(err)
	found, err := suite.repo.Get(team.ID, member.UserID)
	suite.NoError(err)
	suite.Equal(models.PermissionSet{models.CapCreateConversation}, found.Permissions)
	suite.NotNil(found.CreatedBy)
	suite.Equal(granter, *found.CreatedBy)
}

// TestCreateDuplicate tests that the same user cannot join a team twice
func (suite *TeamMemberRepositoryTestSuite) TestCreateDuplicate() {
	team := suite.createTeam()
	userID := uuid.New()
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Owner(team.ID, userID)))

	duplicate := suite.factories.TeamMember.Owner(team.ID, userID)
	err := suite.repo.Create(duplicate)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestCreateMany tests creating an initial roster in one statement
func (suite *TeamMemberRepositoryTestSuite) TestCreateMany() {
	team := suite.createTeam()
	members := []models.TeamMember{
		*suite.factories.TeamMember.Owner(team.ID, uuid.New()),
		*suite.factories.TeamMember.WithPermissions(team.ID, uuid.New(), models.PermissionSet{}),
	}

	err := suite.repo.CreateMany(members)

	suite.NoError(err)
	created, err := suite.repo.ListByTeam(team.ID)
	suite.NoError(err)
	suite.Len(created, 2)
}

// TestCreateManyEmpty tests that an empty roster is a no-op
func (suite *TeamMemberRepositoryTestSuite) TestCreateManyEmpty() {
	suite.NoError(suite.repo.CreateMany(nil))
}

// TestGetNotFound tests looking up a membership that does not exist
func (suite *TeamMemberRepositoryTestSuite) TestGetNotFound() {
	team := suite.createTeam()

	found, err := suite.repo.Get(team.ID, uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestListByTeam tests listing members ordered by user ID
func (suite *TeamMemberRepositoryTestSuite) TestListByTeam() {
	team := suite.createTeam()
	other := suite.createTeam()
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Owner(team.ID, userIDAt(2))))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Owner(team.ID, userIDAt(1))))
	suite.NoError(suite.repo.Create(suite.factories.TeamMember.Owner(other.ID, userIDAt(3))))

	members, err := suite.repo.ListByTeam(team.ID)

	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal(userIDAt(1), members[0].UserID)
	suite.Equal(userIDAt(2), members[1].UserID)
}

// TestUpdatePermissions tests replacing a member's capability set
func (suite *TeamMemberRepositoryTestSuite) TestUpdatePermissions() {
	team := suite.createTeam()
	member := suite.factories.TeamMember.Owner(team.ID, uuid.New())
	suite.NoError(suite.repo.Create(member))

	granted := models.PermissionSet{models.CapSetTeamData, models.CapAddTeamMember}
	err := suite.repo.UpdatePermissions(team.ID, member.UserID, granted)

	suite.NoError(err)
	found, err := suite.repo.Get(team.ID, member.UserID)
	suite.NoError(err)
	suite.Equal(granted, found.Permissions)
}

// TestUpdatePermissionsNotFound tests that updating a missing membership fails
func (suite *TeamMemberRepositoryTestSuite) TestUpdatePermissionsNotFound() {
	team := suite.createTeam()

	err := suite.repo.UpdatePermissions(team.ID, uuid.New(), models.PermissionSet{})

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDelete tests removing a membership
func (suite *TeamMemberRepositoryTestSuite) TestDelete() {
	team := suite.createTeam()
	member := suite.factories.TeamMember.Owner(team.ID, uuid.New())
	suite.NoError(suite.repo.Create(member))

	err := suite.repo.Delete(team.ID, member.UserID)

	suite.NoError(err)
	_, err = suite.repo.Get(team.ID, member.UserID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
