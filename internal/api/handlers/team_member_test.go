package handlers_test

import (
	"net/http"
	"testing"

	"team-management-backend/internal/api/handlers"
	"team-management-backend/internal/database/models"
	apperrors "team-management-backend/internal/errors"
	"team-management-backend/internal/mocks"
	"team-management-backend/internal/service"
	"team-management-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamMemberHandlerTestSuite defines the test suite for TeamMemberHandler
type TeamMemberHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamMemberHandler
	httpSuite   *testutils.HTTPTestSuite
	userID      uuid.UUID
	teamID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *TeamMemberHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamMemberHandler(suite.mockService)
	suite.userID = uuid.New()
	suite.teamID = uuid.New()

	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(testutils.AuthenticateAs(suite.userID))
	teams := v1.Group("/teams")
	{
		teams.POST("/:id/members", suite.handler.AddTeamMember)
		teams.GET("/:id/members", suite.handler.GetTeamMembers)
		teams.GET("/:id/members/:uid", suite.handler.GetTeamMember)
		teams.PATCH("/:id/members/:uid", suite.handler.UpdateTeamMember)
		teams.DELETE("/:id/members/:uid", suite.handler.RemoveTeamMember)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamMemberHandlerTestSuite) membersURL() string {
	return "/api/v1/teams/" + suite.teamID.String() + "/members"
}

// TestAddTeamMember tests the AddTeamMember handler
func (suite *TeamMemberHandlerTestSuite) TestAddTeamMember() {
	suite.T().Run("Success", func(t *testing.T) {
		newUser := uuid.New()
		requestBody := map[string]interface{}{
			"user_id":     newUser.String(),
			"permissions": []string{"create_conversation"},
		}

		suite.mockService.EXPECT().
			AddTeamMember(gomock.Any(), gomock.Any(), suite.teamID, gomock.Any()).
			DoAndReturn(func(_ interface{}, actor service.Actor, _ uuid.UUID, req *service.AddTeamMemberRequest) (*service.TeamMemberResponse, error) {
				assert.Equal(t, suite.userID, actor.UserID)
				assert.Equal(t, newUser, req.UserID)
				assert.Equal(t, models.PermissionSet{models.CapCreateConversation}, req.Permissions)
				return &service.TeamMemberResponse{
					TeamID:      suite.teamID,
					UserID:      newUser,
					Permissions: req.Permissions,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("POST", suite.membersURL(), requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		var response service.TeamMemberResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, newUser, response.UserID)
	})

	suite.T().Run("Already A Member", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddTeamMember(gomock.Any(), gomock.Any(), suite.teamID, gomock.Any()).
			Return(nil, apperrors.ErrTeamMemberExists)

		recorder := suite.httpSuite.MakeRequest("POST", suite.membersURL(),
			map[string]interface{}{"user_id": uuid.New().String()})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
	})

	suite.T().Run("Grant Exceeds Own Set", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddTeamMember(gomock.Any(), gomock.Any(), suite.teamID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidPermissions)

		recorder := suite.httpSuite.MakeRequest("POST", suite.membersURL(),
			map[string]interface{}{"user_id": uuid.New().String(), "permissions": []string{"delete_team"}})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "invalid team permissions")
	})

	suite.T().Run("Team Full", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddTeamMember(gomock.Any(), gomock.Any(), suite.teamID, gomock.Any()).
			Return(nil, apperrors.ErrTooManyMembers)

		recorder := suite.httpSuite.MakeRequest("POST", suite.membersURL(),
			map[string]interface{}{"user_id": uuid.New().String()})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "maximum number of team members")
	})

	suite.T().Run("Invalid Team ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/teams/not-a-uuid/members",
			map[string]interface{}{"user_id": uuid.New().String()})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
	})
}

// TestUpdateTeamMember tests the UpdateTeamMember handler
func (suite *TeamMemberHandlerTestSuite) TestUpdateTeamMember() {
	suite.T().Run("Success", func(t *testing.T) {
		target := uuid.New()
		requestBody := map[string]interface{}{"permissions": []string{"get_billing"}}

		suite.mockService.EXPECT().
			UpdateTeamMember(gomock.Any(), gomock.Any(), suite.teamID, target, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ service.Actor, _, _ uuid.UUID, req *service.UpdateTeamMemberRequest) (*service.TeamMemberResponse, error) {
				assert.Equal(t, models.PermissionSet{models.CapGetBilling}, req.Permissions)
				return &service.TeamMemberResponse{
					TeamID:      suite.teamID,
					UserID:      target,
					Permissions: req.Permissions,
				}, nil
			})

		recorder := suite.httpSuite.MakeRequest("PATCH", suite.membersURL()+"/"+target.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Target Not Found", func(t *testing.T) {
		target := uuid.New()
		suite.mockService.EXPECT().
			UpdateTeamMember(gomock.Any(), gomock.Any(), suite.teamID, target, gomock.Any()).
			Return(nil, apperrors.ErrTeamMemberNotFound)

		recorder := suite.httpSuite.MakeRequest("PATCH", suite.membersURL()+"/"+target.String(),
			map[string]interface{}{"permissions": []string{"get_billing"}})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team member not found")
	})

	suite.T().Run("Invalid User ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("PATCH", suite.membersURL()+"/not-a-uuid",
			map[string]interface{}{"permissions": []string{}})

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid user ID")
	})
}

// TestRemoveTeamMember tests the RemoveTeamMember handler
func (suite *TeamMemberHandlerTestSuite) TestRemoveTeamMember() {
	suite.T().Run("Success", func(t *testing.T) {
		target := uuid.New()
		suite.mockService.EXPECT().
			RemoveTeamMember(gomock.Any(), gomock.Any(), suite.teamID, target).
			Return(nil)

		recorder := suite.httpSuite.MakeRequest("DELETE", suite.membersURL()+"/"+target.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Missing Capability", func(t *testing.T) {
		target := uuid.New()
		suite.mockService.EXPECT().
			RemoveTeamMember(gomock.Any(), gomock.Any(), suite.teamID, target).
			Return(apperrors.NewOperationDeniedError("remove_team_member"))

		recorder := suite.httpSuite.MakeRequest("DELETE", suite.membersURL()+"/"+target.String(), nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "operation denied")
	})
}

// TestGetTeamMembers tests the GetTeamMembers handler
func (suite *TeamMemberHandlerTestSuite) TestGetTeamMembers() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetTeamMembers(gomock.Any(), suite.teamID).
			Return(&service.TeamMemberListResponse{
				Members: []service.TeamMemberResponse{
					{TeamID: suite.teamID, UserID: suite.userID, Permissions: models.FullPermissions()},
					{TeamID: suite.teamID, UserID: uuid.New()},
				},
			}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", suite.membersURL(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var response service.TeamMemberListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Members, 2)
		assert.Empty(t, response.Members[1].Permissions)
	})

	suite.T().Run("Not A Member", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetTeamMembers(gomock.Any(), suite.teamID).
			Return(nil, apperrors.ErrNoTeamMember)

		recorder := suite.httpSuite.MakeRequest("GET", suite.membersURL(), nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not a team member")
	})
}

// TestGetTeamMember tests the GetTeamMember handler
func (suite *TeamMemberHandlerTestSuite) TestGetTeamMember() {
	suite.T().Run("Success", func(t *testing.T) {
		target := uuid.New()
		suite.mockService.EXPECT().
			GetTeamMember(gomock.Any(), suite.teamID, target).
			Return(&service.TeamMemberResponse{TeamID: suite.teamID, UserID: target}, nil)

		recorder := suite.httpSuite.MakeRequest("GET", suite.membersURL()+"/"+target.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		target := uuid.New()
		suite.mockService.EXPECT().
			GetTeamMember(gomock.Any(), suite.teamID, target).
			Return(nil, apperrors.ErrTeamMemberNotFound)

		recorder := suite.httpSuite.MakeRequest("GET", suite.membersURL()+"/"+target.String(), nil)

		testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team member not found")
	})
}

// TestTeamMemberHandlerTestSuite runs the test suite
func TestTeamMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberHandlerTestSuite))
}
