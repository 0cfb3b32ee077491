//go:build integration
// +build integration

package repository

import (
	"testing"

	"team-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ConversationMemberRepositoryTestSuite tests the ConversationMemberRepository
type ConversationMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ConversationMemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ConversationMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewConversationMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ConversationMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ConversationMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ConversationMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestAdd tests joining a user into a conversation
func (suite *ConversationMemberRepositoryTestSuite) TestAdd() {
	conversationID := uuid.New()
	userID := uuid.New()

	err := suite.repo.Add(conversationID, userID)

	suite.NoError(err)
	ids, err := suite.repo.ListUserIDs(conversationID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{userID}, ids)
}

// TestAddIdempotent tests that re-adding an existing member is a no-op
func (suite *ConversationMemberRepositoryTestSuite) TestAddIdempotent() {
	conversationID := uuid.New()
	userID := uuid.New()
	suite.NoError(suite.repo.Add(conversationID, userID))

	err := suite.repo.Add(conversationID, userID)

	suite.NoError(err)
	ids, err := suite.repo.ListUserIDs(conversationID)
	suite.NoError(err)
	suite.Len(ids, 1)
}

// TestListUserIDs tests listing members of one conversation only
func (suite *ConversationMemberRepositoryTestSuite) TestListUserIDs() {
	conversationID := uuid.New()
	userA := userIDAt(1)
	userB := userIDAt(2)
	suite.NoError(suite.repo.Add(conversationID, userB))
	suite.NoError(suite.repo.Add(conversationID, userA))
	suite.NoError(suite.repo.Add(uuid.New(), uuid.New()))

	ids, err := suite.repo.ListUserIDs(conversationID)

	suite.NoError(err)
	suite.Equal([]uuid.UUID{userA, userB}, ids)
}

// TestListUserIDsEmpty tests listing a conversation with no members
func (suite *ConversationMemberRepositoryTestSuite) TestListUserIDsEmpty() {
	ids, err := suite.repo.ListUserIDs(uuid.New())

	suite.NoError(err)
	suite.Empty(ids)
}

// TestRemove tests removing a member from a conversation
func (suite *ConversationMemberRepositoryTestSuite) TestRemove() {
	conversationID := uuid.New()
	userID := uuid.New()
	keeper := uuid.New()
	suite.NoError(suite.repo.Add(conversationID, userID))
	suite.NoError(suite.repo.Add(conversationID, keeper))

	err := suite.repo.Remove(conversationID, userID)

	suite.NoError(err)
	ids, err := suite.repo.ListUserIDs(conversationID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{keeper}, ids)
}

// Run the test suite
func TestConversationMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ConversationMemberRepositoryTestSuite))
}
