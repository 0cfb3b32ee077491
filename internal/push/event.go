package push

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType tags an outbound event. Team-scoped and conversation-scoped kinds
// form two closed families; the subject field of the envelope is keyed to the
// family.
type EventType string

const (
	EventTeamCreate             EventType = "team.create"
	EventTeamUpdate             EventType = "team.update"
	EventTeamDelete             EventType = "team.delete"
	EventTeamMemberJoin         EventType = "team.member-join"
	EventTeamMemberUpdate       EventType = "team.member-update"
	EventTeamMemberLeave        EventType = "team.member-leave"
	EventTeamConversationDelete EventType = "team.conversation-delete"

	EventConversationDelete EventType = "conversation.delete"
)

// MemberData is the payload of member join/update/leave events
type MemberData struct {
	UserID uuid.UUID `json:"user_id"`
}

// ConversationData is the payload of team-scoped conversation events
type ConversationData struct {
	ConversationID uuid.UUID `json:"conversation_id"`
}

// Event is an immutable outbound event envelope. Constructed once, never
// mutated; carries either a team or a conversation subject depending on the
// kind, plus an optional kind-keyed payload.
type Event struct {
	Type         EventType       `json:"type"`
	Team         *uuid.UUID      `json:"team,omitempty"`
	Conversation *uuid.UUID      `json:"conversation,omitempty"`
	Time         time.Time       `json:"time"`
	Data         json.RawMessage `json:"data,omitempty"`
}

// NewTeamEvent constructs a team-scoped event with an optional payload. A
// payload that cannot be marshaled is a programming error and panics.
func NewTeamEvent(eventType EventType, teamID uuid.UUID, payload interface{}) Event {
	return Event{
		Type: eventType,
		Team: &teamID,
		Time: time.Now().UTC(),
		Data: marshalPayload(payload),
	}
}

// NewConversationEvent constructs a conversation-scoped event
func NewConversationEvent(eventType EventType, conversationID uuid.UUID) Event {
	return Event{
		Type:         eventType,
		Conversation: &conversationID,
		Time:         time.Now().UTC(),
	}
}

func marshalPayload(payload interface{}) json.RawMessage {
	if payload == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return data
}
