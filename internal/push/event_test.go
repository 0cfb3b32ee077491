package push_test

import (
	"encoding/json"
	"testing"

	"team-management-backend/internal/push"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeamEvent(t *testing.T) {
	teamID := uuid.New()
	userID := uuid.New()

	event := push.NewTeamEvent(push.EventTeamMemberJoin, teamID, push.MemberData{UserID: userID})

	assert.Equal(t, push.EventTeamMemberJoin, event.Type)
	require.NotNil(t, event.Team)
	assert.Equal(t, teamID, *event.Team)
	assert.Nil(t, event.Conversation)
	assert.False(t, event.Time.IsZero())

	var data push.MemberData
	require.NoError(t, json.Unmarshal(event.Data, &data))
	assert.Equal(t, userID, data.UserID)
}

func TestNewTeamEventWithoutPayload(t *testing.T) {
	event := push.NewTeamEvent(push.EventTeamDelete, uuid.New(), nil)
	assert.Nil(t, event.Data)
}

func TestNewConversationEvent(t *testing.T) {
	convID := uuid.New()

	event := push.NewConversationEvent(push.EventConversationDelete, convID)

	assert.Equal(t, push.EventConversationDelete, event.Type)
	assert.Nil(t, event.Team)
	require.NotNil(t, event.Conversation)
	assert.Equal(t, convID, *event.Conversation)
}

func TestEventEnvelopeJSON(t *testing.T) {
	teamID := uuid.New()
	event := push.NewTeamEvent(push.EventTeamUpdate, teamID, nil)

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "team.update", decoded["type"])
	assert.Equal(t, teamID.String(), decoded["team"])
	// The conversation subject and empty payload are omitted entirely
	assert.NotContains(t, decoded, "conversation")
	assert.NotContains(t, decoded, "data")
}

func TestNotificationJSONOmitsRecipients(t *testing.T) {
	n := push.Notification{
		Event:      push.NewTeamEvent(push.EventTeamCreate, uuid.New(), nil),
		Recipients: []uuid.UUID{uuid.New(), uuid.New()},
		Origin:     "conn-1",
	}

	payload, err := json.Marshal(n)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	// Recipients drive channel fan-out; they never appear on the wire
	assert.NotContains(t, decoded, "recipients")
	assert.Equal(t, "conn-1", decoded["origin"])
}

func TestUserChannel(t *testing.T) {
	userID := uuid.New()
	assert.Equal(t, "push:user:"+userID.String(), push.UserChannel(userID))
}
