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

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberRepo    *TeamMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createTeamWithID persists a team under a caller-chosen ID so ordering
// assertions stay deterministic
func (suite *TeamRepositoryTestSuite) createTeamWithID(seq int) *models.Team {
	team := suite.factories.Team.Create()
	team.ID = uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", seq))
	suite.NoError(suite.repo.Create(team))
	return team
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()
	team.ID = uuid.Nil

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.NotZero(team.CreatedAt)
	suite.True(team.Alive)
}

// TestGetByID tests retrieving a team by ID
func (suite *TeamRepositoryTestSuite) TestGetByID() {
	team := suite.factories.Team.WithName("retrieval-target")
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByID(team.ID)

	suite.NoError(err)
	suite.Equal(team.ID, found.ID)
	suite.Equal("retrieval-target", found.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(found)
}

// TestGetMany tests retrieving several teams ordered by ID
func (suite *TeamRepositoryTestSuite) TestGetMany() {
	team1 := suite.createTeamWithID(1)
	suite.createTeamWithID(2)
	team3 := suite.createTeamWithID(3)

	teams, err := suite.repo.GetMany([]uuid.UUID{team3.ID, team1.ID})

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal(team1.ID, teams[0].ID)
	suite.Equal(team3.ID, teams[1].ID)
}

// TestUpdate tests updating a team
func (suite *TeamRepositoryTestSuite) TestUpdate() {
	team := suite.factories.Team.WithName("before")
	suite.NoError(suite.repo.Create(team))

	team.Name = "after"
	team.Icon = "https://cdn.test.com/icons/new.png"
	err := suite.repo.Update(team)

	suite.NoError(err)
	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("after", found.Name)
	suite.Equal("https://cdn.test.com/icons/new.png", found.Icon)
}

// TestSetAliveAndIsAlive tests flipping and reading the liveness flag
func (suite *TeamRepositoryTestSuite) TestSetAliveAndIsAlive() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	alive, err := suite.repo.IsAlive(team.ID)
	suite.NoError(err)
	suite.True(alive)

	suite.NoError(suite.repo.SetAlive(team.ID, false))

	alive, err = suite.repo.IsAlive(team.ID)
	suite.NoError(err)
	suite.False(alive)
}

// TestIsAliveNotFound tests liveness lookup for a missing team
func (suite *TeamRepositoryTestSuite) TestIsAliveNotFound() {
	_, err := suite.repo.IsAlive(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteCascadesMembers tests that deleting a team removes its member rows
func (suite *TeamRepositoryTestSuite) TestDeleteCascadesMembers() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	member := suite.factories.TeamMember.Owner(team.ID, uuid.New())
	suite.NoError(suite.memberRepo.Create(member))

	err := suite.repo.Delete(team.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByID(team.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
	remaining, err := suite.memberRepo.ListByTeam(team.ID)
	suite.NoError(err)
	suite.Empty(remaining)
}

// TestListIDsForUser tests cursor pagination over a user's team memberships
func (suite *TeamRepositoryTestSuite) TestListIDsForUser() {
	userID := uuid.New()
	team1 := suite.createTeamWithID(1)
	team2 := suite.createTeamWithID(2)
	team3 := suite.createTeamWithID(3)
	for _, team := range []*models.Team{team1, team2, team3} {
		suite.NoError(suite.memberRepo.Create(suite.factories.TeamMember.Owner(team.ID, userID)))
	}
	// Membership of another user must not leak into the page
	suite.NoError(suite.memberRepo.Create(suite.factories.TeamMember.Owner(team1.ID, uuid.New())))

	ids, hasMore, err := suite.repo.ListIDsForUser(userID, nil, 2)

	suite.NoError(err)
	suite.Equal([]uuid.UUID{team1.ID, team2.ID}, ids)
	suite.True(hasMore)

	ids, hasMore, err = suite.repo.ListIDsForUser(userID, &team2.ID, 2)

	suite.NoError(err)
	suite.Equal([]uuid.UUID{team3.ID}, ids)
	suite.False(hasMore)
}

// TestListIDsForUserExactPage tests that a page filled exactly reports no more
func (suite *TeamRepositoryTestSuite) TestListIDsForUserExactPage() {
	userID := uuid.New()
	team1 := suite.createTeamWithID(1)
	team2 := suite.createTeamWithID(2)
	suite.NoError(suite.memberRepo.Create(suite.factories.TeamMember.Owner(team1.ID, userID)))
	suite.NoError(suite.memberRepo.Create(suite.factories.TeamMember.Owner(team2.ID, userID)))

	ids, hasMore, err := suite.repo.ListIDsForUser(userID, nil, 2)

	suite.NoError(err)
	suite.Len(ids, 2)
	suite.False(hasMore)
}

// TestListIDsForUserAmong tests membership filtering of an explicit ID set
func (suite *TeamRepositoryTestSuite) TestListIDsForUserAmong() {
	userID := uuid.New()
	team1 := suite.createTeamWithID(1)
	team2 := suite.createTeamWithID(2)
	team3 := suite.createTeamWithID(3)
	suite.NoError(suite.memberRepo.Create(suite.factories.TeamMember.Owner(team1.ID, userID)))
	suite.NoError(suite.memberRepo.Create(suite.factories.TeamMember.Owner(team3.ID, userID)))

	ids, err := suite.repo.ListIDsForUserAmong(userID, []uuid.UUID{team3.ID, team2.ID, team1.ID})

	suite.NoError(err)
	suite.Equal([]uuid.UUID{team1.ID, team3.ID}, ids)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
